// Package store is the SQLite-backed profile database: settings,
// obligations, vehicle costs, the spending log and goals. It feeds the
// projection engine immutable snapshots; the engine never touches it.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"clearahead/internal/config"
	"clearahead/internal/dateutil"
	"clearahead/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Vehicle slot keys, also the row order.
var vehicleSlots = []string{"finance", "insurance", "tax", "breakdown"}

// Store provides SQLite-backed profile persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the profile database at the given path, seeding
// the default catalogs on first run.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening profile db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedIfEmpty(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding catalogs: %w", err)
	}
	return s, nil
}

// Close closes the profile database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seedIfEmpty() error {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM obligations").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	today := dateutil.Today()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	pos := 0
	insert := func(o model.Obligation) error {
		pos++
		_, err := tx.Exec(`INSERT INTO obligations
			(id, kind, label, enabled, amount, frequency, anchor, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			o.ID, string(o.Kind), o.Label, boolInt(o.Enabled), o.Amount, string(o.Frequency), o.Anchor, pos)
		return err
	}

	for _, o := range config.DefaultIncomes(today) {
		if err := insert(o); err != nil {
			return err
		}
	}
	for _, o := range config.DefaultBills(today) {
		if err := insert(o); err != nil {
			return err
		}
	}

	vehicle := config.DefaultVehicle(today)
	for i, it := range vehicle.Items() {
		_, err := tx.Exec(`INSERT INTO vehicle_items (slot, label, amount, frequency, due)
			VALUES (?, ?, ?, ?, ?)`,
			vehicleSlots[i], it.Label, it.Amount, string(it.Frequency), it.Due)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES ('start_date', ?)`, today); err != nil {
		return err
	}

	return tx.Commit()
}

// Setting reads one settings value, or fallback when unset.
func (s *Store) Setting(key, fallback string) (string, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return v, nil
}

// SetSetting writes one settings value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value)
	return err
}

// Obligations returns rows of the given kinds in stable position order.
func (s *Store) Obligations(kinds ...model.ObligationKind) ([]model.Obligation, error) {
	rows, err := s.db.Query("SELECT id, kind, label, enabled, amount, frequency, anchor FROM obligations ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	want := map[model.ObligationKind]bool{}
	for _, k := range kinds {
		want[k] = true
	}

	var out []model.Obligation
	for rows.Next() {
		var o model.Obligation
		var kind, freq string
		var enabled int
		if err := rows.Scan(&o.ID, &kind, &o.Label, &enabled, &o.Amount, &freq, &o.Anchor); err != nil {
			return nil, err
		}
		o.Kind = model.ObligationKind(kind)
		o.Frequency = model.Frequency(freq)
		o.Enabled = enabled != 0
		if len(want) == 0 || want[o.Kind] {
			out = append(out, o)
		}
	}
	return out, rows.Err()
}

// Obligation returns a single row by id.
func (s *Store) Obligation(id string) (model.Obligation, error) {
	var o model.Obligation
	var kind, freq string
	var enabled int
	err := s.db.QueryRow(
		"SELECT id, kind, label, enabled, amount, frequency, anchor FROM obligations WHERE id = ?", id,
	).Scan(&o.ID, &kind, &o.Label, &enabled, &o.Amount, &freq, &o.Anchor)
	if err == sql.ErrNoRows {
		return o, fmt.Errorf("no such item: %s", id)
	}
	if err != nil {
		return o, err
	}
	o.Kind = model.ObligationKind(kind)
	o.Frequency = model.Frequency(freq)
	o.Enabled = enabled != 0
	return o, nil
}

// SaveObligation inserts or updates a row, preserving its position.
func (s *Store) SaveObligation(o model.Obligation) error {
	_, err := s.db.Exec(`INSERT INTO obligations (id, kind, label, enabled, amount, frequency, anchor, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM obligations))
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind, label = excluded.label, enabled = excluded.enabled,
			amount = excluded.amount, frequency = excluded.frequency, anchor = excluded.anchor`,
		o.ID, string(o.Kind), o.Label, boolInt(o.Enabled), o.Amount, string(o.Frequency), o.Anchor)
	return err
}

// DeleteObligation removes a row by id.
func (s *Store) DeleteObligation(id string) error {
	_, err := s.db.Exec("DELETE FROM obligations WHERE id = ?", id)
	return err
}

// Vehicle returns the vehicle-cost group with its enable flag.
func (s *Store) Vehicle() (model.VehicleCosts, error) {
	enabled, err := s.Setting("vehicle_enabled", "0")
	if err != nil {
		return model.VehicleCosts{}, err
	}
	v := model.VehicleCosts{Enabled: enabled == "1"}

	rows, err := s.db.Query("SELECT slot, label, amount, frequency, due FROM vehicle_items")
	if err != nil {
		return v, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var slot, freq string
		var it model.VehicleItem
		if err := rows.Scan(&slot, &it.Label, &it.Amount, &freq, &it.Due); err != nil {
			return v, err
		}
		it.Frequency = model.Frequency(freq)
		switch slot {
		case "finance":
			v.Finance = it
		case "insurance":
			v.Insurance = it
		case "tax":
			v.Tax = it
		case "breakdown":
			v.Breakdown = it
		}
	}
	return v, rows.Err()
}

// SaveVehicleItem updates one sub-cost slot.
func (s *Store) SaveVehicleItem(slot string, it model.VehicleItem) error {
	res, err := s.db.Exec(`UPDATE vehicle_items SET label = ?, amount = ?, frequency = ?, due = ? WHERE slot = ?`,
		it.Label, it.Amount, string(it.Frequency), it.Due, slot)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no such vehicle slot: %s", slot)
	}
	return nil
}

// Spending returns the spending log, newest first.
func (s *Store) Spending() ([]model.SpendingEntry, error) {
	rows, err := s.db.Query("SELECT id, date, amount, note FROM spending ORDER BY date DESC, id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.SpendingEntry
	for rows.Next() {
		var e model.SpendingEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Note); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// AddSpending appends one entry to the spending log.
func (s *Store) AddSpending(e model.SpendingEntry) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO spending (id, date, amount, note) VALUES (?, ?, ?, ?)",
		e.ID, e.Date, e.Amount, e.Note)
	return err
}

// DeleteSpending removes one entry by id.
func (s *Store) DeleteSpending(id string) error {
	_, err := s.db.Exec("DELETE FROM spending WHERE id = ?", id)
	return err
}

// Goals returns all goals in stable position order.
func (s *Store) Goals() ([]model.Goal, error) {
	rows, err := s.db.Query("SELECT id, name, target_amount, target_date, include_in_calc FROM goals ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Goal
	for rows.Next() {
		var g model.Goal
		var include int
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.TargetDate, &include); err != nil {
			return nil, err
		}
		g.IncludeInCalc = include != 0
		out = append(out, g)
	}
	return out, rows.Err()
}

// SaveGoal inserts or updates a goal, preserving its position.
func (s *Store) SaveGoal(g model.Goal) error {
	_, err := s.db.Exec(`INSERT INTO goals (id, name, target_amount, target_date, include_in_calc, position)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM goals))
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, target_amount = excluded.target_amount,
			target_date = excluded.target_date, include_in_calc = excluded.include_in_calc`,
		g.ID, g.Name, g.TargetAmount, g.TargetDate, boolInt(g.IncludeInCalc))
	return err
}

// DeleteGoal removes a goal by id.
func (s *Store) DeleteGoal(id string) error {
	_, err := s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	return err
}

// LoadSnapshot assembles the full projection input from the profile.
func (s *Store) LoadSnapshot() (model.Snapshot, error) {
	var snap model.Snapshot
	var err error

	if snap.StartDate, err = s.Setting("start_date", dateutil.Today()); err != nil {
		return snap, err
	}
	if snap.Balance, err = s.Setting("balance", ""); err != nil {
		return snap, err
	}

	if snap.Incomes, err = s.Obligations(model.KindWage, model.KindBenefit, model.KindOtherIncome); err != nil {
		return snap, err
	}
	if snap.Bills, err = s.Obligations(model.KindFixedBill); err != nil {
		return snap, err
	}
	if snap.Vehicle, err = s.Vehicle(); err != nil {
		return snap, err
	}
	if snap.Spending, err = s.Spending(); err != nil {
		return snap, err
	}
	if snap.Goals, err = s.Goals(); err != nil {
		return snap, err
	}

	goalsEnabled, err := s.Setting("goals_enabled", "0")
	if err != nil {
		return snap, err
	}
	snap.GoalsEnabled = goalsEnabled == "1"

	return snap, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
