package forecast

import (
	"sort"

	"clearahead/internal/model"
)

// topLabels is how many labels each insight leaderboard carries.
const topLabels = 5

// Insights summarizes money movement across a projection: totals in and
// out, the net, the running-balance extremes, and the biggest labels on
// each side of the ledger.
func Insights(p model.Projection) model.InsightStats {
	stats := model.InsightStats{
		Lowest:  p.Lowest,
		Highest: p.Opening,
	}

	in := map[string]float64{}
	out := map[string]float64{}

	for _, e := range p.Timeline {
		if e.Running > stats.Highest {
			stats.Highest = e.Running
		}
		switch {
		case e.Delta > 0:
			stats.IncomeTotal += e.Delta
			if e.Kind == model.EventIncome {
				in[e.Label] += e.Delta
			}
		case e.Delta < 0:
			stats.OutgoingTotal += -e.Delta
			out[e.Label] += -e.Delta
		}
	}

	stats.Net = stats.IncomeTotal - stats.OutgoingTotal
	stats.TopIncoming = rankLabels(in)
	stats.TopOutgoing = rankLabels(out)
	return stats
}

func rankLabels(totals map[string]float64) []model.LabelTotal {
	ranked := make([]model.LabelTotal, 0, len(totals))
	for label, total := range totals {
		ranked = append(ranked, model.LabelTotal{Label: label, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].Label < ranked[j].Label
	})
	if len(ranked) > topLabels {
		ranked = ranked[:topLabels]
	}
	return ranked
}

// Months breaks a projection down by calendar month: income, outgoings,
// net, the lowest running balance touched, and the event count. Months
// appear in order and only when the timeline touches them.
func Months(p model.Projection) []model.MonthStats {
	byMonth := map[string]*model.MonthStats{}
	var order []string

	for _, e := range p.Timeline {
		if len(e.Date) < 7 {
			continue
		}
		month := e.Date[:7]
		ms, ok := byMonth[month]
		if !ok {
			ms = &model.MonthStats{Month: month, Lowest: e.Running}
			byMonth[month] = ms
			order = append(order, month)
		}
		if e.Running < ms.Lowest {
			ms.Lowest = e.Running
		}
		if e.Kind == model.EventStart {
			continue
		}
		ms.Events++
		if e.Delta > 0 {
			ms.Income += e.Delta
		} else {
			ms.Outgoing += -e.Delta
		}
	}

	sort.Strings(order)
	out := make([]model.MonthStats, 0, len(order))
	for _, m := range order {
		ms := byMonth[m]
		ms.Net = ms.Income - ms.Outgoing
		out = append(out, *ms)
	}
	return out
}
