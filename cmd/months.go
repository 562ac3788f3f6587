package cmd

import (
	"fmt"

	"clearahead/internal/cli"
	"clearahead/internal/forecast"

	"github.com/spf13/cobra"
)

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Month-by-month breakdown of the window",
	RunE:  runMonths,
}

func init() {
	rootCmd.AddCommand(monthsCmd)
}

func runMonths(_ *cobra.Command, _ []string) error {
	_, p, cfg, err := loadProjection(nil)
	if err != nil {
		return err
	}

	currency := cfg.General.Currency
	months := forecast.Months(p)
	if len(months) == 0 {
		fmt.Println("\n  Nothing projected yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTH BY MONTH"))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			cli.FormatMonth(m.Month),
			cli.FormatMoney(currency, m.Income),
			cli.FormatMoney(currency, m.Outgoing),
			cli.FormatDelta(currency, m.Net),
			cli.FormatMoney(currency, m.Lowest),
			fmt.Sprintf("%d", m.Events),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "In", "Out", "Net", "Lowest", "Events"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
