package cmd

import (
	"fmt"

	"clearahead/internal/cli"
	"clearahead/internal/forecast"
	"clearahead/internal/model"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Totals and biggest movers across the window",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	_, p, cfg, err := loadProjection(nil)
	if err != nil {
		return err
	}

	currency := cfg.General.Currency
	stats := forecast.Insights(p)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("INSIGHTS  through %s", cli.FormatDateLong(p.WindowEnd))))
	fmt.Println()

	net := cli.FormatDelta(currency, stats.Net)
	if stats.Net < 0 {
		net = cli.Negative(net)
	} else {
		net = cli.Positive(net)
	}

	fmt.Printf("  Coming in:  %s\n", cli.Positive(cli.FormatMoney(currency, stats.IncomeTotal)))
	fmt.Printf("  Going out:  %s\n", cli.Negative(cli.FormatMoney(currency, stats.OutgoingTotal)))
	fmt.Printf("  Net:        %s\n", net)
	fmt.Printf("  Lowest:     %s\n", cli.FormatMoney(currency, stats.Lowest))
	fmt.Printf("  Highest:    %s\n", cli.FormatMoney(currency, stats.Highest))

	printLeaderboard("Biggest outgoings", currency, stats.TopOutgoing)
	printLeaderboard("Biggest income", currency, stats.TopIncoming)
	fmt.Println()

	return nil
}

func printLeaderboard(title, currency string, entries []model.LabelTotal) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("\n  %s\n", title)

	max := entries[0].Total
	for _, e := range entries {
		fmt.Printf("    %-36s %12s  %s\n",
			e.Label,
			cli.FormatMoney(currency, e.Total),
			cli.Muted(cli.RenderHorizontalBar(e.Total, max, 20)),
		)
	}
}
