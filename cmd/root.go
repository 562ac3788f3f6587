// Package cmd implements the clearahead CLI commands.
package cmd

import (
	"fmt"
	"os"

	"clearahead/internal/cli"
	"clearahead/internal/config"
	"clearahead/internal/dateutil"
	"clearahead/internal/forecast"
	"clearahead/internal/model"
	"clearahead/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagStart string
	flagWeeks int
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "clearahead",
	Short: "Cash-flow lookahead for the next few weeks",
	Long:  "Project your balance over the coming weeks from your income, bills, spending and goals.",
	RunE:  runAhead,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Profile database path (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "", "Projection start date (YYYY-MM-DD, default: saved or today)")
	rootCmd.PersistentFlags().IntVarP(&flagWeeks, "weeks", "w", 0, "Lookahead window in weeks (5-12)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
}

// openStore opens the profile database, honoring the --db override.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	path := flagDB
	if path == "" {
		path = config.DataPath(cfg)
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

// windowWeeks resolves the effective lookahead: the --weeks flag when
// given, otherwise the configured default, always clamped to 5-12.
func windowWeeks(cfg config.Config) int {
	weeks := cfg.General.WindowWeeks
	if flagWeeks != 0 {
		weeks = flagWeeks
	}
	return config.ClampWindow(weeks)
}

// loadProjection is the shared path behind every projecting command:
// load the snapshot, apply flag overrides, and run the engine.
func loadProjection(extra []model.Event) (model.Snapshot, model.Projection, config.Config, error) {
	s, cfg, err := openStore()
	if err != nil {
		return model.Snapshot{}, model.Projection{}, cfg, err
	}
	defer func() { _ = s.Close() }()

	snap, err := s.LoadSnapshot()
	if err != nil {
		return snap, model.Projection{}, cfg, fmt.Errorf("loading profile: %w", err)
	}

	if flagStart != "" {
		if !dateutil.Valid(flagStart) {
			return snap, model.Projection{}, cfg, fmt.Errorf("invalid --start date %q (want YYYY-MM-DD)", flagStart)
		}
		snap.StartDate = flagStart
	}

	weeks := windowWeeks(cfg)
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Projecting %s from %s...\n", formatWeeks(weeks), snap.StartDate)
	}

	return snap, forecast.Project(snap, weeks, extra), cfg, nil
}

func formatWeeks(n int) string {
	return cli.FormatWeeks(n)
}
