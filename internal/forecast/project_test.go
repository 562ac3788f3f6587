package forecast

import (
	"reflect"
	"testing"

	"clearahead/internal/model"
)

func fixtureSnapshot() model.Snapshot {
	return model.Snapshot{
		StartDate: "2024-01-01",
		Balance:   "1000",
		Incomes: []model.Obligation{
			{ID: "wage", Kind: model.KindWage, Label: "Wage / Salary", Enabled: true, Amount: "1500", Frequency: model.Monthly, Anchor: "2024-01-10"},
		},
		Bills: []model.Obligation{
			{ID: "rent", Kind: model.KindFixedBill, Label: "Rent / Housing", Enabled: true, Amount: "500", Frequency: model.Monthly, Anchor: "2024-01-15"},
		},
	}
}

func TestProjectEndToEnd(t *testing.T) {
	p := ProjectAt(fixtureSnapshot(), 5, nil, "2024-01-01")

	if p.Opening != 1000 {
		t.Errorf("opening = %v, want 1000", p.Opening)
	}
	if p.WindowEnd != "2024-02-05" {
		t.Errorf("window end = %q, want 2024-02-05", p.WindowEnd)
	}

	type row struct {
		date    string
		kind    model.EventKind
		running float64
	}
	want := []row{
		{"2024-01-01", model.EventStart, 1000},
		{"2024-01-10", model.EventIncome, 2500},
		{"2024-01-15", model.EventBill, 2000},
	}
	if len(p.Timeline) != len(want) {
		t.Fatalf("timeline length = %d, want %d: %+v", len(p.Timeline), len(want), p.Timeline)
	}
	for i, w := range want {
		got := p.Timeline[i]
		if got.Date != w.date || got.Kind != w.kind || got.Running != w.running {
			t.Errorf("timeline[%d] = {%s %s %v}, want {%s %s %v}",
				i, got.Date, got.Kind, got.Running, w.date, w.kind, w.running)
		}
	}

	if p.Lowest != 1000 {
		t.Errorf("lowest = %v, want 1000", p.Lowest)
	}
	if p.LowestDate != "2024-01-01" {
		t.Errorf("lowest date = %q, want 2024-01-01", p.LowestDate)
	}
}

func TestProjectIdempotent(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Spending = []model.SpendingEntry{
		{ID: "s1", Date: "2024-01-03", Amount: "25.50", Note: "Groceries"},
	}
	a := ProjectAt(snap, 5, nil, "2024-01-01")
	b := ProjectAt(snap, 5, nil, "2024-01-01")
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different projections")
	}
}

func TestProjectWindowBound(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Spending = []model.SpendingEntry{
		{ID: "before", Date: "2023-12-25", Amount: "40", Note: "Out of range"},
		{ID: "after", Date: "2024-03-01", Amount: "40", Note: "Out of range"},
		{ID: "inside", Date: "2024-01-20", Amount: "40", Note: "Coffee"},
	}
	p := ProjectAt(snap, 5, nil, "2024-01-01")

	for i, e := range p.Timeline {
		if i == 0 {
			continue
		}
		if e.Date < "2024-01-01" || e.Date > p.WindowEnd {
			t.Errorf("event %q dated %s escapes the window", e.Label, e.Date)
		}
	}
	var coffee int
	for _, e := range p.Timeline {
		if e.Kind == model.EventSpend {
			coffee++
		}
	}
	if coffee != 1 {
		t.Errorf("spend events in window = %d, want 1", coffee)
	}
}

func TestProjectRunningBalanceRecurrence(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Spending = []model.SpendingEntry{
		{ID: "s1", Date: "2024-01-05", Amount: "30", Note: "Fuel"},
		{ID: "s2", Date: "2024-01-10", Amount: "12.50", Note: "Lunch"},
	}
	p := ProjectAt(snap, 5, nil, "2024-01-01")

	if p.Timeline[0].Running != p.Opening {
		t.Fatalf("timeline[0].running = %v, want opening %v", p.Timeline[0].Running, p.Opening)
	}
	for i := 1; i < len(p.Timeline); i++ {
		want := p.Timeline[i-1].Running + p.Timeline[i].Delta
		if p.Timeline[i].Running != want {
			t.Errorf("timeline[%d].running = %v, want %v", i, p.Timeline[i].Running, want)
		}
	}
}

func TestProjectSameDayOutgoingsBeforeIncome(t *testing.T) {
	snap := fixtureSnapshot()
	// Bill, spending and income all land on the 10th.
	snap.Bills[0].Anchor = "2024-01-10"
	snap.Spending = []model.SpendingEntry{
		{ID: "s1", Date: "2024-01-10", Amount: "20", Note: "Parking"},
	}
	p := ProjectAt(snap, 5, nil, "2024-01-01")

	seenIncome := map[string]bool{}
	for _, e := range p.Timeline {
		if e.Kind == model.EventIncome {
			seenIncome[e.Date] = true
		}
		if e.Kind != model.EventIncome && e.Kind != model.EventStart && seenIncome[e.Date] {
			t.Errorf("income precedes outgoing %q on %s", e.Label, e.Date)
		}
	}

	// The dip before same-day income must be visible as the lowest.
	if p.LowestDate != "2024-01-10" {
		t.Errorf("lowest date = %q, want 2024-01-10", p.LowestDate)
	}
	if p.Lowest != 1000-500-20 {
		t.Errorf("lowest = %v, want 480", p.Lowest)
	}
}

func TestProjectLowestFirstDateWinsOnTies(t *testing.T) {
	snap := model.Snapshot{
		StartDate: "2024-01-01",
		Balance:   "100",
		Spending: []model.SpendingEntry{
			{ID: "a", Date: "2024-01-05", Amount: "50", Note: "Dip"},
			{ID: "b", Date: "2024-01-10", Amount: "25", Note: "Refill offset"},
		},
		Incomes: []model.Obligation{
			{ID: "top", Kind: model.KindOtherIncome, Label: "Top-up", Enabled: true, Amount: "50", Frequency: model.Monthly, Anchor: "2024-01-08"},
		},
	}
	// Running: 100, 50 (Jan 5), 100 (Jan 8), 75 (Jan 10). Minimum 50 once.
	p := ProjectAt(snap, 5, nil, "2024-01-01")
	if p.Lowest != 50 || p.LowestDate != "2024-01-05" {
		t.Errorf("lowest = %v at %q, want 50 at 2024-01-05", p.Lowest, p.LowestDate)
	}

	// Make the minimum recur later: the first date must stick.
	snap.Spending = append(snap.Spending, model.SpendingEntry{ID: "c", Date: "2024-01-12", Amount: "25", Note: "Second dip"})
	p = ProjectAt(snap, 5, nil, "2024-01-01")
	if p.Lowest != 50 || p.LowestDate != "2024-01-05" {
		t.Errorf("tied lowest = %v at %q, want 50 at 2024-01-05", p.Lowest, p.LowestDate)
	}
}

func TestProjectGoalSetAsides(t *testing.T) {
	snap := model.Snapshot{
		StartDate:    "2024-01-01",
		Balance:      "500",
		GoalsEnabled: true,
		Goals: []model.Goal{
			{ID: "g1", Name: "Holiday", TargetAmount: "140", TargetDate: "2024-01-15", IncludeInCalc: true},
		},
	}
	p := ProjectAt(snap, 5, nil, "2024-01-01")

	// 14 days to target: perWeek = 140/2 = 70, emitted on days 1, 8, 15
	// and then stopped by the target date.
	var dates []string
	for _, e := range p.Timeline {
		if e.Kind == model.EventGoal {
			dates = append(dates, e.Date)
			if e.Delta != -70 {
				t.Errorf("set-aside delta = %v, want -70", e.Delta)
			}
		}
	}
	want := []string{"2024-01-01", "2024-01-08", "2024-01-15"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("set-aside dates = %v, want %v", dates, want)
	}
}

func TestProjectSkipsExcludedAndInvalidGoals(t *testing.T) {
	snap := model.Snapshot{
		StartDate:    "2024-01-01",
		Balance:      "500",
		GoalsEnabled: true,
		Goals: []model.Goal{
			{ID: "g1", Name: "Excluded", TargetAmount: "100", TargetDate: "2024-02-01", IncludeInCalc: false},
			{ID: "g2", Name: "Same-day target", TargetAmount: "100", TargetDate: "2024-01-01", IncludeInCalc: true},
		},
	}
	p := ProjectAt(snap, 5, nil, "2024-01-01")
	for _, e := range p.Timeline {
		if e.Kind == model.EventGoal {
			t.Errorf("unexpected set-aside %q on %s", e.Label, e.Date)
		}
	}
}

func TestProjectWhatIfEvents(t *testing.T) {
	extra := []model.Event{
		{Date: "2024-01-12", Kind: model.EventWhatIf, Label: "New sofa", Amount: -300},
		{Date: "2024-06-01", Kind: model.EventWhatIf, Label: "Too far out", Amount: -300},
		{Date: "not-a-date", Kind: model.EventWhatIf, Label: "Dropped", Amount: -300},
	}
	p := ProjectAt(fixtureSnapshot(), 5, extra, "2024-01-01")

	var whatifs []string
	for _, e := range p.Timeline {
		if e.Kind == model.EventWhatIf {
			whatifs = append(whatifs, e.Label)
		}
	}
	if len(whatifs) != 1 || whatifs[0] != "New sofa" {
		t.Errorf("what-if events = %v, want [New sofa]", whatifs)
	}
}

func TestProjectDegradesOnMalformedData(t *testing.T) {
	snap := model.Snapshot{
		StartDate: "2024-01-01",
		Balance:   "not money",
		Incomes: []model.Obligation{
			{ID: "i1", Kind: model.KindWage, Label: "No amount", Enabled: true, Amount: "", Frequency: model.Monthly, Anchor: "2024-01-10"},
			{ID: "i2", Kind: model.KindWage, Label: "Bad date", Enabled: true, Amount: "100", Frequency: model.Monthly, Anchor: "2024-13-01"},
			{ID: "i3", Kind: model.KindWage, Label: "Disabled", Enabled: false, Amount: "100", Frequency: model.Monthly, Anchor: "2024-01-10"},
		},
		Spending: []model.SpendingEntry{
			{ID: "s1", Date: "bad", Amount: "10", Note: "Dropped"},
			{ID: "s2", Date: "2024-01-05", Amount: "zero?", Note: "Dropped too"},
		},
	}
	p := ProjectAt(snap, 5, nil, "2024-01-01")

	if p.Opening != 0 {
		t.Errorf("unparsable balance: opening = %v, want 0", p.Opening)
	}
	if len(p.Timeline) != 1 {
		t.Errorf("timeline length = %d, want just the start entry: %+v", len(p.Timeline), p.Timeline)
	}
}

func TestProjectVehicleSubCosts(t *testing.T) {
	snap := model.Snapshot{
		StartDate: "2024-01-01",
		Balance:   "1000",
		Vehicle: model.VehicleCosts{
			Enabled:   true,
			Finance:   model.VehicleItem{Label: "Vehicle payment / finance", Amount: "200", Frequency: model.Monthly, Due: "2024-01-03"},
			Insurance: model.VehicleItem{Label: "Car insurance", Amount: "0", Frequency: model.Monthly, Due: "2024-01-04"},
			Tax:       model.VehicleItem{Label: "Car tax", Amount: "", Frequency: model.Monthly, Due: "2024-01-05"},
			Breakdown: model.VehicleItem{Label: "Breakdown cover", Amount: "10", Frequency: model.Monthly, Due: "bad-date"},
		},
	}
	p := ProjectAt(snap, 5, nil, "2024-01-01")

	var labels []string
	for _, e := range p.Timeline {
		if e.Kind == model.EventBill {
			labels = append(labels, e.Label)
		}
	}
	want := []string{"Vehicle payment / finance", "Vehicle payment / finance"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("vehicle bill labels = %v, want %v", labels, want)
	}
}

func TestProjectDisabledVehicleContributesNothing(t *testing.T) {
	snap := model.Snapshot{
		StartDate: "2024-01-01",
		Balance:   "1000",
		Vehicle: model.VehicleCosts{
			Finance: model.VehicleItem{Label: "Vehicle payment / finance", Amount: "200", Frequency: model.Monthly, Due: "2024-01-03"},
		},
	}
	p := ProjectAt(snap, 5, nil, "2024-01-01")
	if len(p.Timeline) != 1 {
		t.Errorf("disabled vehicle produced events: %+v", p.Timeline[1:])
	}
}
