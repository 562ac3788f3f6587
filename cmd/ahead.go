package cmd

import (
	"fmt"

	"clearahead/internal/cli"
	"clearahead/internal/config"
	"clearahead/internal/model"

	"github.com/spf13/cobra"
)

var aheadCmd = &cobra.Command{
	Use:   "ahead",
	Short: "Lookahead summary: safe to spend, lowest point, confidence",
	RunE:  runAhead,
}

func init() {
	rootCmd.AddCommand(aheadCmd)
}

func runAhead(_ *cobra.Command, _ []string) error {
	snap, p, cfg, err := loadProjection(nil)
	if err != nil {
		return err
	}

	currency := cfg.General.Currency
	safe := config.SafeNumber(p.Lowest, cfg.General.Buffer)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LOOKAHEAD  %s → %s",
		cli.FormatDateLong(snap.StartDate), cli.FormatDateLong(p.WindowEnd))))
	fmt.Println()

	fmt.Printf("  Safe to spend:   %s", cli.FormatMoney(currency, safe))
	fmt.Printf("  %s\n", cli.Muted(fmt.Sprintf("(lowest minus %s buffer, never below zero)",
		cli.FormatMoney(currency, cfg.General.Buffer))))

	lowest := cli.FormatMoney(currency, p.Lowest)
	if p.Lowest < 0 {
		lowest = cli.Negative(lowest)
	}
	fmt.Printf("  Opening balance: %s\n", cli.FormatMoney(currency, p.Opening))
	fmt.Printf("  Lowest point:    %s on %s\n", lowest, cli.FormatDate(p.LowestDate))
	fmt.Printf("  Confidence:      %s\n", cli.ConfidenceBadge(string(p.Confidence)))

	if series := runningSeries(p); len(series) > 1 {
		fmt.Printf("\n  Balance:  %s\n", cli.RenderSparkline(series))
	}

	if len(p.Reasons) > 0 {
		fmt.Println()
		for _, r := range p.Reasons {
			fmt.Printf("  %s %s\n", cli.Muted("•"), r)
		}
	}
	fmt.Println()

	return nil
}

func runningSeries(p model.Projection) []float64 {
	series := make([]float64, 0, len(p.Timeline))
	for _, e := range p.Timeline {
		series = append(series, e.Running)
	}
	return series
}
