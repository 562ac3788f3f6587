package cmd

import (
	"fmt"

	"clearahead/internal/cli"
	"clearahead/internal/model"

	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Event-by-event projected timeline",
	RunE:  runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(_ *cobra.Command, _ []string) error {
	_, p, cfg, err := loadProjection(nil)
	if err != nil {
		return err
	}

	currency := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TIMELINE  through %s", cli.FormatDateLong(p.WindowEnd))))
	fmt.Println()

	rows := make([][]string, 0, len(p.Timeline))
	for _, e := range p.Timeline {
		delta := ""
		if e.Kind != model.EventStart {
			delta = cli.FormatDelta(currency, e.Delta)
		}
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			eventLabel(e),
			delta,
			cli.FormatMoney(currency, e.Running),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Event", "Change", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

// eventLabel renders "Bill • Rent / Housing" style labels; the synthetic
// start entry has no prefix.
func eventLabel(e model.TimelineEntry) string {
	if e.Kind == model.EventStart {
		return e.Label
	}
	return e.Kind.Display() + " • " + e.Label
}
