package tui

import (
	"fmt"
	"strconv"
	"strings"

	"clearahead/internal/cli"
	"clearahead/internal/config"
	"clearahead/internal/money"
	"clearahead/internal/tui/components"
	"clearahead/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldWindow
	settingsFieldBuffer
	settingsFieldCurrency
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := a.cfg
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldWindow:
		ti.Placeholder = fmt.Sprintf("%d-%d weeks", config.MinWindowWeeks, config.MaxWindowWeeks)
		ti.SetValue(strconv.Itoa(config.ClampWindow(cfg.General.WindowWeeks)))
	case settingsFieldBuffer:
		ti.Placeholder = "250"
		ti.SetValue(strconv.FormatFloat(cfg.General.Buffer, 'f', -1, 64))
	case settingsFieldCurrency:
		ti.Placeholder = "£"
		ti.SetValue(cfg.General.Currency)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		// Window and buffer changes move the projection
		return a, loadDataCmd(a.dbPath, a.startOverride, a.weeksOverride)
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldWindow:
		if n, err := strconv.Atoi(val); err == nil {
			cfg.General.WindowWeeks = config.ClampWindow(n)
		}
	case settingsFieldBuffer:
		if v, ok := money.Parse(val); ok && v >= 0 {
			cfg.General.Buffer = v
		}
	case settingsFieldCurrency:
		if val != "" {
			cfg.General.Currency = val
		}
	}

	a.cfg = cfg
	a.settings.saveErr = config.Save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg
	currency := cfg.General.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Theme", cfg.Appearance.Theme},
		{"Window", cli.FormatWeeks(config.ClampWindow(cfg.General.WindowWeeks))},
		{"Buffer", cli.FormatMoney(currency, cfg.General.Buffer)},
		{"Currency", currency},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-12s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-12s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-12s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Profile info card
	dbPath := a.dbPath
	if dbPath == "" {
		dbPath = config.DataPath(cfg)
	}

	enabledIncomes := 0
	for _, o := range a.snap.Incomes {
		if o.Enabled {
			enabledIncomes++
		}
	}
	enabledBills := 0
	for _, o := range a.snap.Bills {
		if o.Enabled {
			enabledBills++
		}
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Profile:      ") + valueStyle.Render(dbPath) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Start date:   ") + valueStyle.Render(a.snap.StartDate) + "\n")
	infoBody.WriteString(labelStyle.Render("Enabled:      ") + valueStyle.Render(
		fmt.Sprintf("%d incomes, %d bills", enabledIncomes, enabledBills)) + "\n")
	infoBody.WriteString(labelStyle.Render("Spending log: ") + valueStyle.Render(
		fmt.Sprintf("%d entries", len(a.snap.Spending))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Profile", infoBody.String(), cw))

	return b.String()
}
