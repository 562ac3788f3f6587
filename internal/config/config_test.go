package config

import (
	"path/filepath"
	"testing"
)

func TestClampWindow(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 5},
		{4, 5},
		{5, 5},
		{8, 8},
		{12, 12},
		{13, 12},
		{100, 12},
	}
	for _, tt := range tests {
		if got := ClampWindow(tt.in); got != tt.want {
			t.Errorf("ClampWindow(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSafeNumber(t *testing.T) {
	tests := []struct {
		lowest, buffer, want float64
	}{
		{1000, 250, 750},
		{250, 250, 0},
		{100, 250, 0},
		{-50, 250, 0},
		{300.75, 250, 50.75},
	}
	for _, tt := range tests {
		if got := SafeNumber(tt.lowest, tt.buffer); got != tt.want {
			t.Errorf("SafeNumber(%v, %v) = %v, want %v", tt.lowest, tt.buffer, got, tt.want)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.WindowWeeks != DefaultWindowWeeks {
		t.Errorf("default window = %d, want %d", cfg.General.WindowWeeks, DefaultWindowWeeks)
	}
	if Exists() {
		t.Error("config file should not exist before Save")
	}

	cfg.General.WindowWeeks = 8
	cfg.General.Currency = "€"
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}
	if !Exists() {
		t.Error("config file should exist after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.General.WindowWeeks != 8 || loaded.General.Currency != "€" {
		t.Errorf("round trip lost values: %+v", loaded.General)
	}
}

func TestDataPathOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataPath(cfg); got != filepath.Join("/tmp/xdg-data", "clearahead", "clearahead.db") {
		t.Errorf("xdg data path = %q", got)
	}

	cfg.General.DataPath = "/elsewhere/profile.db"
	if got := DataPath(cfg); got != "/elsewhere/profile.db" {
		t.Errorf("override path = %q", got)
	}
}

func TestDefaultCatalogs(t *testing.T) {
	incomes := DefaultIncomes("2024-01-01")
	bills := DefaultBills("2024-01-01")

	if len(incomes) != 15 {
		t.Errorf("income catalog size = %d, want 15", len(incomes))
	}
	if len(bills) != 12 {
		t.Errorf("bill catalog size = %d, want 12", len(bills))
	}

	for _, o := range incomes {
		if !o.Kind.Income() {
			t.Errorf("income row %s has non-income kind %s", o.ID, o.Kind)
		}
		if o.Enabled {
			t.Errorf("income row %s starts enabled", o.ID)
		}
		if o.Anchor != "2024-01-01" {
			t.Errorf("income row %s anchor = %q", o.ID, o.Anchor)
		}
	}
	for _, o := range bills {
		if o.Kind != "fixed-bill" {
			t.Errorf("bill row %s kind = %s", o.ID, o.Kind)
		}
		if o.ID == "vehicle_costs" {
			t.Error("vehicle costs must not appear as a bill row")
		}
	}

	v := DefaultVehicle("2024-01-01")
	if v.Enabled {
		t.Error("vehicle group starts disabled")
	}
	if len(v.Items()) != 4 {
		t.Errorf("vehicle items = %d, want 4", len(v.Items()))
	}
}
