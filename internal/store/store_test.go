package store

import (
	"path/filepath"
	"testing"

	"clearahead/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "profile.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenSeedsCatalogs(t *testing.T) {
	s := openTestStore(t)

	incomes, err := s.Obligations(model.KindWage, model.KindBenefit, model.KindOtherIncome)
	if err != nil {
		t.Fatal(err)
	}
	if len(incomes) != 15 {
		t.Errorf("seeded incomes = %d, want 15", len(incomes))
	}

	bills, err := s.Obligations(model.KindFixedBill)
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 12 {
		t.Errorf("seeded bills = %d, want 12", len(bills))
	}

	v, err := s.Vehicle()
	if err != nil {
		t.Fatal(err)
	}
	if v.Enabled {
		t.Error("vehicle starts disabled")
	}
	if v.Finance.Label != "Vehicle payment / finance" {
		t.Errorf("finance label = %q", v.Finance.Label)
	}
}

func TestSeedingIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveObligation(model.Obligation{
		ID: "custom", Kind: model.KindFixedBill, Label: "Gym", Enabled: true,
		Amount: "30", Frequency: model.Monthly, Anchor: "2024-01-05",
	}); err != nil {
		t.Fatal(err)
	}
	_ = s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s2.Close() }()

	bills, err := s2.Obligations(model.KindFixedBill)
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 13 {
		t.Errorf("reopen reseeded: bills = %d, want 13", len(bills))
	}
}

func TestObligationRoundTrip(t *testing.T) {
	s := openTestStore(t)

	o, err := s.Obligation("rent_housing")
	if err != nil {
		t.Fatal(err)
	}
	o.Enabled = true
	o.Amount = "850"
	o.Anchor = "2024-01-15"
	if err := s.SaveObligation(o); err != nil {
		t.Fatal(err)
	}

	got, err := s.Obligation("rent_housing")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Enabled || got.Amount != "850" || got.Anchor != "2024-01-15" {
		t.Errorf("round trip: %+v", got)
	}

	if _, err := s.Obligation("nope"); err == nil {
		t.Error("missing id should error")
	}
}

func TestVehicleItemUpdate(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveVehicleItem("tax", model.VehicleItem{
		Label: "Car tax", Amount: "15", Frequency: model.Monthly, Due: "2024-01-03",
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting("vehicle_enabled", "1"); err != nil {
		t.Fatal(err)
	}

	v, err := s.Vehicle()
	if err != nil {
		t.Fatal(err)
	}
	if !v.Enabled || v.Tax.Amount != "15" || v.Tax.Due != "2024-01-03" {
		t.Errorf("vehicle after update: %+v", v)
	}

	if err := s.SaveVehicleItem("sidecar", model.VehicleItem{}); err == nil {
		t.Error("unknown slot should error")
	}
}

func TestSpendingLog(t *testing.T) {
	s := openTestStore(t)

	entries := []model.SpendingEntry{
		{ID: "a", Date: "2024-01-05", Amount: "12.50", Note: "Lunch"},
		{ID: "b", Date: "2024-01-10", Amount: "40", Note: "Fuel"},
	}
	for _, e := range entries {
		if err := s.AddSpending(e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Spending()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "b" {
		t.Errorf("spending order: %+v", got)
	}

	if err := s.DeleteSpending("a"); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Spending()
	if len(got) != 1 {
		t.Errorf("after delete: %+v", got)
	}
}

func TestGoalsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	g := model.Goal{ID: "g1", Name: "Holiday", TargetAmount: "700", TargetDate: "2024-06-01", IncludeInCalc: true}
	if err := s.SaveGoal(g); err != nil {
		t.Fatal(err)
	}
	g.TargetAmount = "900"
	if err := s.SaveGoal(g); err != nil {
		t.Fatal(err)
	}

	goals, err := s.Goals()
	if err != nil {
		t.Fatal(err)
	}
	if len(goals) != 1 || goals[0].TargetAmount != "900" || !goals[0].IncludeInCalc {
		t.Errorf("goals: %+v", goals)
	}

	if err := s.DeleteGoal("g1"); err != nil {
		t.Fatal(err)
	}
	goals, _ = s.Goals()
	if len(goals) != 0 {
		t.Errorf("after delete: %+v", goals)
	}
}

func TestLoadSnapshot(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetSetting("balance", "1250"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting("start_date", "2024-01-01"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting("goals_enabled", "1"); err != nil {
		t.Fatal(err)
	}

	o, _ := s.Obligation("wage_salary")
	o.Enabled = true
	o.Amount = "1500"
	o.Anchor = "2024-01-10"
	if err := s.SaveObligation(o); err != nil {
		t.Fatal(err)
	}

	snap, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if snap.Balance != "1250" || snap.StartDate != "2024-01-01" || !snap.GoalsEnabled {
		t.Errorf("snapshot settings: %+v", snap)
	}
	if len(snap.Incomes) != 15 || len(snap.Bills) != 12 {
		t.Errorf("snapshot sizes: incomes=%d bills=%d", len(snap.Incomes), len(snap.Bills))
	}

	var wage model.Obligation
	for _, inc := range snap.Incomes {
		if inc.ID == "wage_salary" {
			wage = inc
		}
	}
	if !wage.Enabled || wage.Amount != "1500" {
		t.Errorf("wage row: %+v", wage)
	}
}
