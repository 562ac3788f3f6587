// Package model defines the domain records and results for clearahead
// cash-flow projections.
package model

// ObligationKind tags a recurring obligation with its role. Behavior that
// depends on the kind branches on this tag, never on ID conventions.
type ObligationKind string

const (
	KindWage        ObligationKind = "wage"
	KindBenefit     ObligationKind = "benefit"
	KindOtherIncome ObligationKind = "other-income"
	KindFixedBill   ObligationKind = "fixed-bill"
	KindVehicleSub  ObligationKind = "vehicle-sub-bill"
)

// Income reports whether the kind represents money coming in.
func (k ObligationKind) Income() bool {
	return k == KindWage || k == KindBenefit || k == KindOtherIncome
}

// Obligation is a recurring income source or bill. Amount is kept as the
// raw user text and re-parsed at projection time; Anchor is the ISO date
// of the next payment (income) or the due date (bill) that seeds
// recurrence expansion.
type Obligation struct {
	ID        string
	Kind      ObligationKind
	Label     string
	Enabled   bool
	Amount    string
	Frequency Frequency
	Anchor    string
}

// VehicleItem is one of the four vehicle sub-costs. A sub-cost with an
// absent or zero amount contributes nothing to the projection.
type VehicleItem struct {
	Label     string
	Amount    string
	Frequency Frequency
	Due       string
}

// VehicleCosts groups the four vehicle sub-costs behind a single enable
// toggle. The rolled-up total shown next to the toggle is the caller's
// concern; the engine expands each sub-cost independently.
type VehicleCosts struct {
	Enabled   bool
	Finance   VehicleItem
	Insurance VehicleItem
	Tax       VehicleItem
	Breakdown VehicleItem
}

// Items returns the sub-costs in fixed order.
func (v VehicleCosts) Items() []VehicleItem {
	return []VehicleItem{v.Finance, v.Insurance, v.Tax, v.Breakdown}
}

// SpendingEntry is a one-off logged outgoing. Spending has no enable
// toggle; any entry inside the window is projected.
type SpendingEntry struct {
	ID     string
	Date   string
	Amount string
	Note   string
}

// Goal is a savings target the user may earmark money toward.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  string
	TargetDate    string
	IncludeInCalc bool
}

// GoalPlan is the derived set-aside rate for a goal. OK is false (with a
// user-facing Message) when the goal cannot be planned; planning never
// panics or errors.
type GoalPlan struct {
	OK           bool
	Message      string
	TargetAmount float64
	Days         int
	PerWeek      float64
	PerMonth     float64
}

// EventKind classifies a timeline event.
type EventKind string

const (
	EventStart  EventKind = "start"
	EventIncome EventKind = "income"
	EventBill   EventKind = "bill"
	EventSpend  EventKind = "spend"
	EventGoal   EventKind = "goal"
	EventWhatIf EventKind = "whatif"
)

// SortRank orders same-day events conservatively: everything that takes
// money out ranks before income, so a same-day payment never masks a
// same-day outgoing.
func (k EventKind) SortRank() int {
	if k == EventIncome {
		return 1
	}
	return 0
}

// Display returns the label prefix used when rendering an event.
func (k EventKind) Display() string {
	switch k {
	case EventIncome:
		return "Income"
	case EventSpend:
		return "Spending"
	case EventGoal:
		return "Goal"
	case EventWhatIf:
		return "What-if"
	case EventBill:
		return "Bill"
	}
	return ""
}

// Event is a single dated, signed money movement feeding the projection.
// Income is positive; everything else is negative.
type Event struct {
	Date   string
	Kind   EventKind
	Label  string
	Amount float64
}

// TimelineEntry is one row of the projected timeline: the event plus the
// running balance after applying it.
type TimelineEntry struct {
	Date    string
	Kind    EventKind
	Label   string
	Delta   float64
	Running float64
}

// ConfidenceLevel is the qualitative rating of projection trustworthiness.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// Projection is the full result of one projection call. It is derived
// fresh on every call and never persisted.
type Projection struct {
	Opening    float64
	WindowEnd  string
	Timeline   []TimelineEntry
	Lowest     float64
	LowestDate string
	Confidence ConfidenceLevel
	Reasons    []string
}

// Snapshot is the caller-owned, immutable input set for one projection.
// The engine only reads it; nothing in a snapshot outlives the call.
type Snapshot struct {
	StartDate    string
	Balance      string
	Incomes      []Obligation
	Bills        []Obligation
	Vehicle      VehicleCosts
	Spending     []SpendingEntry
	GoalsEnabled bool
	Goals        []Goal
}

// LabelTotal pairs an event label with an accumulated amount.
type LabelTotal struct {
	Label string
	Total float64
}

// InsightStats summarizes money movement across the projected window.
type InsightStats struct {
	IncomeTotal   float64
	OutgoingTotal float64
	Net           float64
	Lowest        float64
	Highest       float64
	TopIncoming   []LabelTotal
	TopOutgoing   []LabelTotal
}

// MonthStats summarizes one calendar month of the projected window.
type MonthStats struct {
	Month    string // YYYY-MM
	Income   float64
	Outgoing float64
	Net      float64
	Lowest   float64
	Events   int
}
