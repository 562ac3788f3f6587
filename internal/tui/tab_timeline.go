package tui

import (
	"fmt"
	"strings"

	"clearahead/internal/cli"
	"clearahead/internal/model"
	"clearahead/internal/tui/components"
	"clearahead/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// timelineState tracks the timeline tab's scroll position.
type timelineState struct {
	cursor int
	offset int
}

func (a *App) renderTimelineTab(cw, contentH int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	entries := a.proj.Timeline

	if len(entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
			"Nothing to project yet. Switch on income and bills first.")
		return components.ContentCard("Timeline", empty, cw)
	}

	innerW := components.CardInnerWidth(cw)

	// Visible rows: card chrome eats border, title and hint lines
	visible := contentH - 6
	if visible < 3 {
		visible = 3
	}

	// Keep the cursor inside the visible window
	if a.timeline.cursor < a.timeline.offset {
		a.timeline.offset = a.timeline.cursor
	}
	if a.timeline.cursor >= a.timeline.offset+visible {
		a.timeline.offset = a.timeline.cursor - visible + 1
	}
	if a.timeline.offset < 0 {
		a.timeline.offset = 0
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	inStyle := lipgloss.NewStyle().Foreground(t.Green)
	outStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	overdraftStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	selectedStyle := lipgloss.NewStyle().Background(t.SurfaceBright)

	labelW := innerW - 12 - 12 - 12 - 3
	if labelW < 16 {
		labelW = 16
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-12s%-*s %11s %11s", "Date", labelW, "Event", "Change", "Balance")))
	b.WriteString("\n")

	end := a.timeline.offset + visible
	if end > len(entries) {
		end = len(entries)
	}
	for i := a.timeline.offset; i < end; i++ {
		e := entries[i]

		change := ""
		if e.Kind != model.EventStart {
			if e.Delta > 0 {
				change = inStyle.Render(fmt.Sprintf("%11s", cli.FormatDelta(currency, e.Delta)))
			} else {
				change = outStyle.Render(fmt.Sprintf("%11s", cli.FormatMoney(currency, e.Delta)))
			}
		} else {
			change = dimStyle.Render(fmt.Sprintf("%11s", "—"))
		}

		running := fmt.Sprintf("%11s", cli.FormatMoney(currency, e.Running))
		if e.Running < 0 {
			running = overdraftStyle.Render(running)
		} else {
			running = labelStyle.Render(running)
		}

		row := dateStyle.Render(fmt.Sprintf("%-12s", cli.FormatDate(e.Date))) +
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(timelineLabel(e), labelW))) +
			" " + change + " " + running

		if i == a.timeline.cursor {
			row = selectedStyle.Render("▸ ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("%d-%d of %d  ·  [j/k] move  [g/G] jump",
		a.timeline.offset+1, end, len(entries))))

	return components.ContentCard("Timeline", strings.TrimRight(b.String(), "\n"), cw)
}

// timelineLabel composes the display label for a timeline entry:
// "<kind> • <label>", with the synthetic start entry rendered bare.
func timelineLabel(e model.TimelineEntry) string {
	if e.Kind == model.EventStart {
		return e.Label
	}
	prefix := e.Kind.Display()
	if prefix == "" {
		return e.Label
	}
	return prefix + " • " + e.Label
}
