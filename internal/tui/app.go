// Package tui provides the interactive Bubble Tea dashboard for clearahead.
package tui

import (
	"fmt"
	"strings"

	"clearahead/internal/config"
	"clearahead/internal/dateutil"
	"clearahead/internal/forecast"
	"clearahead/internal/model"
	"clearahead/internal/store"
	"clearahead/internal/tui/components"
	"clearahead/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg carries one full profile load and projection.
type dataLoadedMsg struct {
	snap   model.Snapshot
	proj   model.Projection
	stats  model.InsightStats
	months []model.MonthStats
	cfg    config.Config
	weeks  int
	err    error
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	snap    model.Snapshot
	proj    model.Projection
	stats   model.InsightStats
	months  []model.MonthStats
	cfg     config.Config
	weeks   int
	loaded  bool
	loadErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	timeline timelineState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model

	// Flag overrides carried through reloads
	dbPath        string
	startOverride string
	weeksOverride int
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 140

	// Scroll navigation
	scrollOverhead    = 9 // header + table chrome + status bar for half-page calc
	minHalfPageScroll = 1
	minContentHeight  = 5
)

// NewApp creates a new TUI app model. dbPath, start and weeks are the
// persistent flag overrides; zero values mean "use the config".
func NewApp(dbPath, start string, weeks int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		needSetup:     !config.Exists(),
		spinner:       sp,
		dbPath:        dbPath,
		startOverride: start,
		weeksOverride: weeks,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dbPath, a.startOverride, a.weeksOverride),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case dataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err == nil {
			a.snap = msg.snap
			a.proj = msg.proj
			a.stats = msg.stats
			a.months = msg.months
			a.cfg = msg.cfg
			a.weeks = msg.weeks
			a.clampTimelineCursor()
		}

		// Activate first-run setup once the profile is readable
		if a.needSetup && msg.err == nil {
			a.setupForm = newSetupForm(&a.setupVals, msg.cfg)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 1 && a.timeline.cursor > 0 {
				a.timeline.cursor--
			}
			return a, nil
		case tea.MouseButtonWheelDown:
			if a.activeTab == 1 && a.timeline.cursor < len(a.proj.Timeline)-1 {
				a.timeline.cursor++
			}
			return a, nil
		case tea.MouseButtonLeft:
			// Tab bar occupies the first two lines
			if msg.Y <= 1 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab text input intercepts all keys while editing
		if a.activeTab == 2 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Timeline tab has its own scroll keys
		if a.activeTab == 1 {
			switch key {
			case "j", "down":
				if a.timeline.cursor < len(a.proj.Timeline)-1 {
					a.timeline.cursor++
				}
				return a, nil
			case "k", "up":
				if a.timeline.cursor > 0 {
					a.timeline.cursor--
				}
				return a, nil
			case "g":
				a.timeline.cursor = 0
				a.timeline.offset = 0
				return a, nil
			case "G":
				a.timeline.cursor = len(a.proj.Timeline) - 1
				if a.timeline.cursor < 0 {
					a.timeline.cursor = 0
				}
				return a, nil
			case "ctrl+d", "ctrl+u":
				halfPage := (a.height - scrollOverhead) / 2
				if halfPage < minHalfPageScroll {
					halfPage = minHalfPageScroll
				}
				if key == "ctrl+d" {
					a.timeline.cursor += halfPage
				} else {
					a.timeline.cursor -= halfPage
				}
				a.clampTimelineCursor()
				return a, nil
			}
		}

		// Settings tab navigation
		if a.activeTab == 2 {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			return a, loadDataCmd(a.dbPath, a.startOverride, a.weeksOverride)
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		_ = a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, loadDataCmd(a.dbPath, a.startOverride, a.weeksOverride)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) clampTimelineCursor() {
	if a.timeline.cursor >= len(a.proj.Timeline) {
		a.timeline.cursor = len(a.proj.Timeline) - 1
	}
	if a.timeline.cursor < 0 {
		a.timeline.cursor = 0
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return a.viewError()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  clearahead needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ clearahead"))
	b.WriteString(subtitleStyle.Render(" · Cash-flow Lookahead"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Projecting..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Surface).
		Bold(true)

	textStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Could not load the profile"))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render(truncate(a.loadErr.Error(), 70)))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render("[r] retry  [q] quit"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o t s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move through the timeline"},
		{"g G", "Jump to start / end"},
		{"^d ^u", "Half-page scroll"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Edit setting"},
		{"Esc", "Cancel edit"},
		{"r", "Reload the projection"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + window pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(fmt.Sprintf("%dwk", a.weeks)) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(fmt.Sprintf("%s → %s", a.snap.StartDate, a.proj.WindowEnd)) +
		pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, fmt.Sprintf("%s confidence", a.proj.Confidence))

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderTimelineTab(cw, contentH)
	case 2:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// loadDataCmd opens the profile, builds the snapshot, and runs the
// projection in the background.
func loadDataCmd(dbPath, start string, weeks int) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load()
		if err != nil {
			return dataLoadedMsg{cfg: cfg, err: err}
		}

		path := dbPath
		if path == "" {
			path = config.DataPath(cfg)
		}

		s, err := store.Open(path)
		if err != nil {
			return dataLoadedMsg{cfg: cfg, err: err}
		}
		snap, err := s.LoadSnapshot()
		_ = s.Close()
		if err != nil {
			return dataLoadedMsg{cfg: cfg, err: err}
		}

		if start != "" && dateutil.Valid(start) {
			snap.StartDate = start
		}

		w := cfg.General.WindowWeeks
		if weeks != 0 {
			w = weeks
		}
		w = config.ClampWindow(w)

		proj := forecast.Project(snap, w, nil)
		return dataLoadedMsg{
			snap:   snap,
			proj:   proj,
			stats:  forecast.Insights(proj),
			months: forecast.Months(proj),
			cfg:    cfg,
			weeks:  w,
		}
	}
}
