package tui

import (
	"fmt"
	"strings"
	"time"

	"clearahead/internal/cli"
	"clearahead/internal/config"
	"clearahead/internal/forecast"
	"clearahead/internal/model"
	"clearahead/internal/money"
	"clearahead/internal/tui/components"
	"clearahead/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	p := a.proj
	var b strings.Builder

	// Row 1: Metric cards
	safe := config.SafeNumber(p.Lowest, a.cfg.General.Buffer)

	lowestDelta := ""
	if p.LowestDate != "" {
		lowestDelta = "on " + cli.FormatDate(p.LowestDate)
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Safe to spend", cli.FormatMoney(currency, safe),
			fmt.Sprintf("after %s buffer", cli.FormatMoney(currency, a.cfg.General.Buffer))},
		{"Opening", cli.FormatMoney(currency, p.Opening), cli.FormatDate(a.snap.StartDate)},
		{"Lowest point", cli.FormatMoney(currency, p.Lowest), lowestDelta},
		{"Net movement", cli.FormatDelta(currency, a.stats.Net),
			fmt.Sprintf("in %s out %s", cli.FormatMoney(currency, a.stats.IncomeTotal),
				cli.FormatMoney(currency, a.stats.OutgoingTotal))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Running balance sparkline
	if series := balanceSeries(p); len(series) > 1 {
		sparkColor := t.Accent
		if p.Lowest < 0 {
			sparkColor = t.Red
		}
		series = sampleSeries(series, components.CardInnerWidth(cw))
		body := components.Sparkline(series, sparkColor) + "\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render(
				fmt.Sprintf("%s → %s, %d events",
					cli.FormatDate(a.snap.StartDate), cli.FormatDate(p.WindowEnd), len(p.Timeline)-1))
		b.WriteString(components.ContentCard("Balance", body, cw))
		b.WriteString("\n")
	}

	// Row 3: Money in / money out by calendar month
	if len(a.months) > 0 {
		inVals := make([]float64, len(a.months))
		outVals := make([]float64, len(a.months))
		labels := make([]string, len(a.months))
		for i, m := range a.months {
			inVals[i] = m.Income
			outVals[i] = m.Outgoing
			labels[i] = shortMonth(m.Month)
		}

		chartH := 8
		if a.isCompactLayout() {
			chartH = 6
		}

		halves := components.LayoutRow(cw, 2)
		inCard := components.ContentCard("Money In",
			components.BarChart(inVals, labels, t.Green, components.CardInnerWidth(halves[0]), chartH),
			halves[0])
		outCard := components.ContentCard("Money Out",
			components.BarChart(outVals, labels, t.Orange, components.CardInnerWidth(halves[1]), chartH),
			halves[1])

		if a.isCompactLayout() {
			b.WriteString(components.ContentCard("Money In",
				components.BarChart(inVals, labels, t.Green, components.CardInnerWidth(cw), chartH), cw))
			b.WriteString("\n")
			b.WriteString(components.ContentCard("Money Out",
				components.BarChart(outVals, labels, t.Orange, components.CardInnerWidth(cw), chartH), cw))
		} else {
			b.WriteString(components.CardRow([]string{inCard, outCard}))
		}
		b.WriteString("\n")
	}

	// Row 4: Confidence reasons + goal funding
	confBody := a.renderConfidenceBody()
	goalBody := a.renderGoalsBody(components.CardInnerWidth(cw / 2))

	if goalBody == "" {
		b.WriteString(components.ContentCard("Confidence", confBody, cw))
		return b.String()
	}

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Confidence", confBody, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Goals", goalBody, cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		confCard := components.ContentCard("Confidence", confBody, halves[0])
		goalCard := components.ContentCard("Goals", goalBody, halves[1])
		b.WriteString(components.CardRow([]string{confCard, goalCard}))
	}

	return b.String()
}

func (a App) renderConfidenceBody() string {
	t := theme.Active

	var levelColor lipgloss.Color
	switch a.proj.Confidence {
	case model.ConfidenceHigh:
		levelColor = t.Green
	case model.ConfidenceMedium:
		levelColor = t.Yellow
	default:
		levelColor = t.Red
	}

	levelStyle := lipgloss.NewStyle().Foreground(levelColor).Bold(true)
	reasonStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	bulletStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(levelStyle.Render(string(a.proj.Confidence)))
	b.WriteString("\n")
	for _, r := range a.proj.Reasons {
		b.WriteString(bulletStyle.Render("• "))
		b.WriteString(reasonStyle.Render(r))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderGoalsBody shows how much of each included goal the window's
// set-asides cover. Returns "" when goals are off or none are counted.
func (a App) renderGoalsBody(innerW int) string {
	if !a.snap.GoalsEnabled {
		return ""
	}

	// Set-aside totals per goal label, from the projected timeline
	setAside := make(map[string]float64)
	for _, e := range a.proj.Timeline {
		if e.Kind == model.EventGoal {
			setAside[e.Label] += -e.Delta
		}
	}

	currency := a.cfg.General.Currency
	labelW := 12
	barW := innerW - labelW - 30
	if barW < 8 {
		barW = 8
	}

	var lines []string
	for _, g := range a.snap.Goals {
		if !g.IncludeInCalc {
			continue
		}
		plan := forecast.PlanGoal(a.snap.StartDate, g)
		if !plan.OK {
			continue
		}
		target, ok := money.Parse(g.TargetAmount)
		if !ok || target <= 0 {
			continue
		}

		name := g.Name
		if name == "" {
			name = "Set-aside"
		}
		pct := setAside[name] / target
		note := fmt.Sprintf("%s/wk · %dd",
			cli.FormatMoney(currency, forecast.RoundRate(plan.PerWeek)), plan.Days)
		lines = append(lines, components.GoalBar(truncate(name, labelW), pct, note, labelW, barW))
	}

	return strings.Join(lines, "\n")
}

func balanceSeries(p model.Projection) []float64 {
	series := make([]float64, 0, len(p.Timeline))
	for _, e := range p.Timeline {
		series = append(series, e.Running)
	}
	return series
}

// sampleSeries thins a series to at most width points, keeping the
// first and last values.
func sampleSeries(series []float64, width int) []float64 {
	n := len(series)
	if width < 2 || n <= width {
		return series
	}
	out := make([]float64, width)
	for i := range out {
		out[i] = series[i*(n-1)/(width-1)]
	}
	return out
}

// shortMonth turns "2024-01" into "Jan".
func shortMonth(month string) string {
	d, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return d.Format("Jan")
}
