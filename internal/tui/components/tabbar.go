package components

import (
	"strings"

	"clearahead/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Timeline", Key: 't'},
	{Name: "Settings", Key: 's'},
}

// TabVisualWidth returns the rendered width of one tab. The mouse hitbox
// logic depends on this matching RenderTabBar exactly.
func TabVisualWidth(tab Tab, active bool) int {
	if active {
		return len(tab.Name) + 2 // " Name "
	}
	return len(tab.Name) + 5 // " Name[k] "
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(" "+tab.Name+" "))
		} else {
			parts = append(parts, inactiveStyle.Render(" "+tab.Name)+
				dimKeyStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimKeyStyle.Render("]")+
				inactiveStyle.Render(" "))
		}
	}

	bar := strings.Join(parts, dimKeyStyle.Render("│"))
	return lipgloss.NewStyle().Width(width).Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
