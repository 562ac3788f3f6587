package tui

import (
	"fmt"
	"strings"

	"clearahead/internal/config"
	"clearahead/internal/money"
	"clearahead/internal/store"
	"clearahead/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	balance string
	weeks   int
	theme   string
}

// newSetupForm builds the first-run wizard shown when no config file
// exists yet.
func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.weeks = config.ClampWindow(cfg.General.WindowWeeks)
	vals.theme = theme.Active.Name

	weekOpts := make([]huh.Option[int], 0, config.MaxWindowWeeks-config.MinWindowWeeks+1)
	for w := config.MinWindowWeeks; w <= config.MaxWindowWeeks; w++ {
		weekOpts = append(weekOpts, huh.NewOption(fmt.Sprintf("%d weeks", w), w))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current balance").
				Description("What's in the account right now? Leave blank to set later.").
				Placeholder("2,900.50").
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, ok := money.Parse(s); !ok {
						return fmt.Errorf("cannot read %q as an amount", s)
					}
					return nil
				}).
				Value(&vals.balance),

			huh.NewSelect[int]().
				Title("Lookahead window").
				Description("How many weeks ahead to project.").
				Options(weekOpts...).
				Value(&vals.weeks),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

// saveSetupConfig persists the form answers: window and theme go to the
// config file, the balance goes to the profile database.
func (a *App) saveSetupConfig() error {
	cfg, _ := config.Load()

	cfg.General.WindowWeeks = config.ClampWindow(a.setupVals.weeks)
	cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(cfg.Appearance.Theme)

	if err := config.Save(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	balance := strings.TrimSpace(a.setupVals.balance)
	if balance == "" {
		return nil
	}

	path := a.dbPath
	if path == "" {
		path = config.DataPath(cfg)
	}
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.SetSetting("balance", balance)
}
