package forecast

import (
	"strings"
	"testing"

	"clearahead/internal/model"
)

func completeSnapshot() model.Snapshot {
	return model.Snapshot{
		StartDate: "2024-01-01",
		Balance:   "1000",
		Incomes: []model.Obligation{
			{ID: "wage", Kind: model.KindWage, Label: "Wage / Salary", Enabled: true, Amount: "1500", Frequency: model.Monthly, Anchor: "2024-01-10"},
		},
		Bills: []model.Obligation{
			{ID: "rent", Kind: model.KindFixedBill, Label: "Rent / Housing", Enabled: true, Amount: "500", Frequency: model.Monthly, Anchor: "2024-01-15"},
		},
		Spending: []model.SpendingEntry{
			{ID: "s1", Date: "2023-12-30", Amount: "20", Note: "Groceries"},
		},
	}
}

func hasReason(reasons []string, fragment string) bool {
	for _, r := range reasons {
		if strings.Contains(r, fragment) {
			return true
		}
	}
	return false
}

func TestConfidenceHighWhenComplete(t *testing.T) {
	level, reasons := Confidence(completeSnapshot(), "2024-01-01")
	if level != model.ConfidenceHigh {
		t.Errorf("level = %s, want High (reasons: %v)", level, reasons)
	}
	if !hasReason(reasons, "logged recently") {
		t.Errorf("missing recency reason: %v", reasons)
	}
}

func TestConfidenceLowWhenNothingEnabled(t *testing.T) {
	level, reasons := Confidence(model.Snapshot{StartDate: "2024-01-01"}, "2024-01-01")
	if level != model.ConfidenceLow {
		t.Errorf("level = %s, want Low", level)
	}
	if !hasReason(reasons, "No income/bills are enabled") {
		t.Errorf("missing base reason: %v", reasons)
	}
}

func TestConfidenceMissingDetails(t *testing.T) {
	snap := completeSnapshot()
	snap.Incomes[0].Amount = "" // one missing detail

	level, _ := Confidence(snap, "2024-01-01")
	if level != model.ConfidenceMedium {
		t.Errorf("one missing detail: level = %s, want Medium", level)
	}

	snap.Incomes[0].Anchor = "bad"
	snap.Incomes[0].Frequency = "" // three missing details
	level, reasons := Confidence(snap, "2024-01-01")
	if level != model.ConfidenceLow {
		t.Errorf("three missing details: level = %s, want Low (%v)", level, reasons)
	}
}

func TestConfidenceNoSpendingDowngradesHigh(t *testing.T) {
	snap := completeSnapshot()
	snap.Spending = nil

	level, reasons := Confidence(snap, "2024-01-01")
	if level != model.ConfidenceMedium {
		t.Errorf("level = %s, want Medium", level)
	}
	if !hasReason(reasons, "No spending has been logged") {
		t.Errorf("missing no-spending reason: %v", reasons)
	}
}

func TestConfidenceStaleSpendingDowngrades(t *testing.T) {
	snap := completeSnapshot()
	snap.Spending[0].Date = "2024-01-01"

	level, reasons := Confidence(snap, "2024-01-11")
	if level != model.ConfidenceMedium {
		t.Errorf("level = %s, want Medium (%v)", level, reasons)
	}
	if !hasReason(reasons, "10 days ago") {
		t.Errorf("reason should cite the exact day count: %v", reasons)
	}

	// Stale spending stacks on top of missing details: Medium drops to Low.
	snap.Incomes[0].Amount = ""
	level, _ = Confidence(snap, "2024-01-11")
	if level != model.ConfidenceLow {
		t.Errorf("stacked downgrade: level = %s, want Low", level)
	}
}

func TestConfidenceGoalHonestyReasons(t *testing.T) {
	snap := completeSnapshot()
	snap.GoalsEnabled = true
	snap.Goals = []model.Goal{
		{ID: "g1", Name: "Holiday", TargetAmount: "700", TargetDate: "2024-06-01", IncludeInCalc: false},
	}

	level, reasons := Confidence(snap, "2024-01-01")
	if !hasReason(reasons, "not included in calculations") {
		t.Errorf("missing excluded-goal reason: %v", reasons)
	}
	if !hasReason(reasons, "none are included") {
		t.Errorf("missing none-included reason: %v", reasons)
	}
	// Informational only: the level must not move.
	if level != model.ConfidenceHigh {
		t.Errorf("goal honesty changed level to %s", level)
	}
}

func TestConfidenceCountsIncludedGoalPlans(t *testing.T) {
	snap := completeSnapshot()
	snap.GoalsEnabled = true
	snap.Goals = []model.Goal{
		{ID: "g1", Name: "Broken", TargetAmount: "", TargetDate: "2024-06-01", IncludeInCalc: true},
	}

	level, _ := Confidence(snap, "2024-01-01")
	if level != model.ConfidenceMedium {
		t.Errorf("unplannable included goal: level = %s, want Medium", level)
	}
}

func TestConfidenceVehicleSubCostCounting(t *testing.T) {
	snap := completeSnapshot()
	snap.Vehicle = model.VehicleCosts{
		Enabled: true,
		// Zero and absent amounts are not counted at all.
		Finance:   model.VehicleItem{Label: "Vehicle payment / finance", Amount: "0", Frequency: model.Monthly, Due: "2024-01-03"},
		Insurance: model.VehicleItem{Label: "Car insurance", Amount: "", Frequency: model.Monthly, Due: "2024-01-04"},
		// Non-zero amount with a bad due date is one missing detail.
		Tax: model.VehicleItem{Label: "Car tax", Amount: "15", Frequency: model.Monthly, Due: "bad"},
	}

	level, _ := Confidence(snap, "2024-01-01")
	if level != model.ConfidenceMedium {
		t.Errorf("level = %s, want Medium", level)
	}
}
