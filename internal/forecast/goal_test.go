package forecast

import (
	"strings"
	"testing"

	"clearahead/internal/model"
)

func TestPlanGoal(t *testing.T) {
	g := model.Goal{Name: "Holiday", TargetAmount: "700", TargetDate: "2024-03-11"}
	plan := PlanGoal("2024-01-01", g)

	if !plan.OK {
		t.Fatalf("plan failed: %s", plan.Message)
	}
	if plan.Days != 70 {
		t.Errorf("days = %d, want 70", plan.Days)
	}
	if plan.TargetAmount != 700 {
		t.Errorf("target = %v, want 700", plan.TargetAmount)
	}
	if plan.PerWeek != 70 {
		t.Errorf("per week = %v, want 70", plan.PerWeek)
	}
	if plan.PerMonth != 300 {
		t.Errorf("per month = %v, want 300", plan.PerMonth)
	}
}

func TestPlanGoalFailures(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		goal    model.Goal
		wantMsg string
	}{
		{
			"invalid start date",
			"nope",
			model.Goal{TargetAmount: "100", TargetDate: "2024-06-01"},
			"Start date is invalid.",
		},
		{
			"missing amount",
			"2024-01-01",
			model.Goal{TargetAmount: "", TargetDate: "2024-06-01"},
			"Enter a target amount.",
		},
		{
			"zero amount",
			"2024-01-01",
			model.Goal{TargetAmount: "0", TargetDate: "2024-06-01"},
			"Enter a target amount.",
		},
		{
			"negative amount",
			"2024-01-01",
			model.Goal{TargetAmount: "-50", TargetDate: "2024-06-01"},
			"Enter a target amount.",
		},
		{
			"invalid target date",
			"2024-01-01",
			model.Goal{TargetAmount: "100", TargetDate: "2024-02-30"},
			"Enter a valid target date.",
		},
		{
			"target equals start",
			"2024-01-01",
			model.Goal{TargetAmount: "100", TargetDate: "2024-01-01"},
			"after the start date",
		},
		{
			"target before start",
			"2024-01-01",
			model.Goal{TargetAmount: "100", TargetDate: "2023-12-01"},
			"after the start date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanGoal(tt.start, tt.goal)
			if plan.OK {
				t.Fatal("plan succeeded, want failure")
			}
			if !strings.Contains(plan.Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to mention %q", plan.Message, tt.wantMsg)
			}
		})
	}
}
