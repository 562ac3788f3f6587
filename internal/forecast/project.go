package forecast

import (
	"sort"
	"time"

	"clearahead/internal/dateutil"
	"clearahead/internal/model"
	"clearahead/internal/money"
)

// Project builds the full cash-flow projection for a snapshot over a
// window of windowWeeks weeks, using the ambient clock for defaults.
// extra events (what-if purchases) are injected verbatim when in range.
func Project(snap model.Snapshot, windowWeeks int, extra []model.Event) model.Projection {
	return ProjectAt(snap, windowWeeks, extra, dateutil.Today())
}

// ProjectAt is Project with the clock injected: today supplies the start
// date when the snapshot has none, and anchors confidence recency. Equal
// inputs always produce an identical result; callers re-run it on every
// change rather than mutating a previous result.
func ProjectAt(snap model.Snapshot, windowWeeks int, extra []model.Event, today string) model.Projection {
	startISO := snap.StartDate
	if !dateutil.Valid(startISO) {
		startISO = today
	}
	start, _ := dateutil.Parse(startISO)
	windowEnd := dateutil.AddDays(start, windowWeeks*7)
	windowEndISO := dateutil.Format(windowEnd)

	opening := 0.0
	if v, ok := money.Parse(snap.Balance); ok {
		opening = v
	}

	events := collectEvents(snap, start, windowEnd, extra, startISO)

	// Same-day order is conservative: money is assumed to leave before it
	// arrives, so a payment never masks an outgoing dated the same day.
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Kind.SortRank() != b.Kind.SortRank() {
			return a.Kind.SortRank() < b.Kind.SortRank()
		}
		return a.Label < b.Label
	})

	running := opening
	lowest := opening
	lowestDate := startISO

	timeline := make([]model.TimelineEntry, 0, len(events)+1)
	timeline = append(timeline, model.TimelineEntry{
		Date:    startISO,
		Kind:    model.EventStart,
		Label:   "Start",
		Running: running,
	})

	for _, ev := range events {
		running += ev.Amount
		timeline = append(timeline, model.TimelineEntry{
			Date:    ev.Date,
			Kind:    ev.Kind,
			Label:   ev.Label,
			Delta:   ev.Amount,
			Running: running,
		})
		if running < lowest {
			lowest = running
			lowestDate = ev.Date
		}
	}

	level, reasons := Confidence(snap, today)

	// Lowest may go negative; overdraft is representable. Any safety
	// buffer is subtracted by the caller, not here.
	return model.Projection{
		Opening:    opening,
		WindowEnd:  windowEndISO,
		Timeline:   timeline,
		Lowest:     lowest,
		LowestDate: lowestDate,
		Confidence: level,
		Reasons:    reasons,
	}
}

func collectEvents(snap model.Snapshot, start, windowEnd time.Time, extra []model.Event, startISO string) []model.Event {
	var events []model.Event

	inWindow := func(d time.Time) bool {
		return !d.Before(start) && !d.After(windowEnd)
	}

	// One-off spending.
	for _, s := range snap.Spending {
		if !dateutil.Valid(s.Date) {
			continue
		}
		amt, ok := money.Parse(s.Amount)
		if !ok || amt == 0 {
			continue
		}
		d, _ := dateutil.Parse(s.Date)
		if !inWindow(d) {
			continue
		}
		label := s.Note
		if label == "" {
			label = "Spending"
		}
		events = append(events, model.Event{Date: s.Date, Kind: model.EventSpend, Label: label, Amount: -amt})
	}

	// What-if events pass through verbatim when dated in range.
	for _, ev := range extra {
		if !dateutil.Valid(ev.Date) {
			continue
		}
		d, _ := dateutil.Parse(ev.Date)
		if !inWindow(d) {
			continue
		}
		events = append(events, ev)
	}

	// Goal set-asides: a fixed weekly cadence from the start date through
	// the sooner of the window end and the goal's target date. This walk
	// is independent of the recurrence expander.
	if snap.GoalsEnabled {
		for _, g := range snap.Goals {
			if !g.IncludeInCalc {
				continue
			}
			plan := PlanGoal(startISO, g)
			if !plan.OK || plan.PerWeek <= 0 {
				continue
			}
			target, _ := dateutil.Parse(g.TargetDate)
			label := g.Name
			if label == "" {
				label = "Set-aside"
			}
			for d := start; !d.After(windowEnd); d = dateutil.AddDays(d, 7) {
				if d.After(target) {
					break
				}
				events = append(events, model.Event{
					Date:   dateutil.Format(d),
					Kind:   model.EventGoal,
					Label:  label,
					Amount: -plan.PerWeek,
				})
			}
		}
	}

	// Recurring income.
	for _, inc := range snap.Incomes {
		if !inc.Enabled {
			continue
		}
		amt, ok := money.Parse(inc.Amount)
		if !ok {
			continue
		}
		for _, d := range Occurrences(start, inc.Anchor, inc.Frequency, windowEnd) {
			events = append(events, model.Event{Date: dateutil.Format(d), Kind: model.EventIncome, Label: inc.Label, Amount: amt})
		}
	}

	// Recurring bills.
	for _, b := range snap.Bills {
		if !b.Enabled {
			continue
		}
		amt, ok := money.Parse(b.Amount)
		if !ok {
			continue
		}
		for _, d := range Occurrences(start, b.Anchor, b.Frequency, windowEnd) {
			events = append(events, model.Event{Date: dateutil.Format(d), Kind: model.EventBill, Label: b.Label, Amount: -amt})
		}
	}

	// Vehicle sub-costs expand independently under their own labels. A
	// sub-cost with an absent or zero amount contributes nothing.
	if snap.Vehicle.Enabled {
		for _, it := range snap.Vehicle.Items() {
			amt, ok := money.Parse(it.Amount)
			if !ok || amt == 0 {
				continue
			}
			for _, d := range Occurrences(start, it.Due, it.Frequency, windowEnd) {
				events = append(events, model.Event{Date: dateutil.Format(d), Kind: model.EventBill, Label: it.Label, Amount: -amt})
			}
		}
	}

	return events
}
