package forecast

import (
	"math"

	"clearahead/internal/dateutil"
	"clearahead/internal/model"
	"clearahead/internal/money"
)

// PlanGoal derives the linear set-aside rate for a goal from startDate.
// Failure is a structured result with a user-facing message, never an
// error: planning is called on partially filled goals all the time.
func PlanGoal(startDate string, g model.Goal) model.GoalPlan {
	if !dateutil.Valid(startDate) {
		return model.GoalPlan{Message: "Start date is invalid."}
	}

	target, ok := money.Parse(g.TargetAmount)
	if !ok || target <= 0 {
		return model.GoalPlan{Message: "Enter a target amount."}
	}

	if !dateutil.Valid(g.TargetDate) {
		return model.GoalPlan{Message: "Enter a valid target date."}
	}

	start, _ := dateutil.Parse(startDate)
	end, _ := dateutil.Parse(g.TargetDate)
	days := dateutil.DaysUntil(start, end)
	if days <= 0 {
		return model.GoalPlan{Message: "Target date must be after the start date."}
	}

	// Linear amortization, not compounding: weeks and months are
	// approximated as 7 and 30 days.
	return model.GoalPlan{
		OK:           true,
		TargetAmount: target,
		Days:         days,
		PerWeek:      target / (float64(days) / 7),
		PerMonth:     target / (float64(days) / 30),
	}
}

// RoundRate rounds a set-aside rate to whole pennies for display.
func RoundRate(v float64) float64 {
	return math.Round(v*100) / 100
}
