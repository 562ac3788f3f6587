package forecast

import (
	"fmt"

	"clearahead/internal/dateutil"
	"clearahead/internal/model"
	"clearahead/internal/money"
)

// staleSpendDays is the age at which the newest spending entry stops
// counting as recent.
const staleSpendDays = 7

// Confidence rates how trustworthy a projection of snap would be. The
// rating is purely a function of input completeness and spending recency,
// never of the projected amounts. Reasons accumulate even when they do
// not change the level.
func Confidence(snap model.Snapshot, today string) (model.ConfidenceLevel, []string) {
	startISO := snap.StartDate
	if !dateutil.Valid(startISO) {
		startISO = today
	}

	var enabled, missing int

	count := func(amount string, date string, freq model.Frequency) {
		enabled++
		if _, ok := money.Parse(amount); !ok {
			missing++
		}
		if !dateutil.Valid(date) {
			missing++
		}
		if freq == "" {
			missing++
		}
	}

	for _, inc := range snap.Incomes {
		if inc.Enabled {
			count(inc.Amount, inc.Anchor, inc.Frequency)
		}
	}
	for _, b := range snap.Bills {
		if b.Enabled {
			count(b.Amount, b.Anchor, b.Frequency)
		}
	}

	// Vehicle sub-costs only count once they carry a non-zero amount, and
	// then only their frequency and due date can be missing.
	if snap.Vehicle.Enabled {
		for _, it := range snap.Vehicle.Items() {
			amt, ok := money.Parse(it.Amount)
			if !ok || amt == 0 {
				continue
			}
			enabled++
			if it.Frequency == "" {
				missing++
			}
			if !dateutil.Valid(it.Due) {
				missing++
			}
		}
	}

	if snap.GoalsEnabled {
		for _, g := range snap.Goals {
			if !g.IncludeInCalc {
				continue
			}
			enabled++
			if !PlanGoal(startISO, g).OK {
				missing++
			}
		}
	}

	level := model.ConfidenceHigh
	var reasons []string

	switch {
	case enabled == 0:
		level = model.ConfidenceLow
		reasons = append(reasons, "No income/bills are enabled yet.")
	case missing >= 3:
		level = model.ConfidenceLow
		reasons = append(reasons, "Some enabled items are missing an amount or date.")
	case missing > 0:
		level = model.ConfidenceMedium
		reasons = append(reasons, "Some enabled items are missing details.")
	}

	lastSpend := ""
	for _, s := range snap.Spending {
		if !dateutil.Valid(s.Date) {
			continue
		}
		if lastSpend == "" || s.Date > lastSpend {
			lastSpend = s.Date
		}
	}

	if lastSpend == "" {
		if level == model.ConfidenceHigh {
			level = model.ConfidenceMedium
		}
		reasons = append(reasons, "No spending has been logged yet, so day-to-day purchases aren't reflected.")
	} else {
		a, _ := dateutil.Parse(today)
		b, _ := dateutil.Parse(lastSpend)
		since := dateutil.DaysBetween(a, b)
		if since >= staleSpendDays {
			switch level {
			case model.ConfidenceHigh:
				level = model.ConfidenceMedium
			case model.ConfidenceMedium:
				level = model.ConfidenceLow
			}
			reasons = append(reasons, fmt.Sprintf("Last spending log was %d days ago, so accuracy may be drifting.", since))
		} else {
			reasons = append(reasons, "Spending was logged recently, so day-to-day accuracy is stronger.")
		}
	}

	if snap.GoalsEnabled && len(snap.Goals) > 0 {
		var included, excluded int
		for _, g := range snap.Goals {
			if g.IncludeInCalc {
				included++
			} else {
				excluded++
			}
		}
		if excluded > 0 {
			reasons = append(reasons, "Some savings goals are set but not included in calculations (so 'may be available' is more optimistic).")
		}
		if included == 0 {
			reasons = append(reasons, "Savings goals are on, but none are included in calculations.")
		}
	}

	return level, reasons
}
