package cmd

import (
	"fmt"

	"clearahead/internal/cli"
	"clearahead/internal/dateutil"
	"clearahead/internal/model"
	"clearahead/internal/money"

	"github.com/spf13/cobra"
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Show and edit vehicle running costs",
	RunE:  runVehicleShow,
}

func init() {
	vehicleCmd.AddCommand(vehicleToggleCmd(true), vehicleToggleCmd(false), vehicleSetCmd())
	rootCmd.AddCommand(vehicleCmd)
}

func runVehicleShow(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	v, err := s.Vehicle()
	if err != nil {
		return err
	}

	state := cli.Muted("off")
	if v.Enabled {
		state = cli.Positive("on")
	}

	slots := []string{"finance", "insurance", "tax", "breakdown"}
	rows := make([][]string, 0, 4)
	total := 0.0
	for i, it := range v.Items() {
		amount := cli.Muted("—")
		if amt, ok := money.Parse(it.Amount); ok {
			amount = cli.FormatMoney(cfg.General.Currency, amt)
			total += amt
		}
		rows = append(rows, []string{
			slots[i],
			it.Label,
			amount,
			model.FrequencyLabel(it.Frequency),
			cli.FormatDate(it.Due),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("VEHICLE COSTS (%s)", state),
		Headers: []string{"Slot", "Cost", "Amount", "Frequency", "Due"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Entered total: %s. Each cost is projected on its own schedule.\n\n",
		cli.FormatMoney(cfg.General.Currency, total))
	return nil
}

func vehicleToggleCmd(enable bool) *cobra.Command {
	use, short := "on", "Include vehicle costs in projections"
	if !enable {
		use, short = "off", "Exclude vehicle costs from projections"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			value := "0"
			state := "off"
			if enable {
				value, state = "1", "on"
			}
			if err := s.SetSetting("vehicle_enabled", value); err != nil {
				return err
			}
			fmt.Printf("  Vehicle costs are now %s.\n", state)
			return nil
		},
	}
}

func vehicleSetCmd() *cobra.Command {
	var amount, frequency, date string
	cmd := &cobra.Command{
		Use:   "set <finance|insurance|tax|breakdown>",
		Short: "Update one vehicle cost",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			v, err := s.Vehicle()
			if err != nil {
				return err
			}
			var it model.VehicleItem
			switch args[0] {
			case "finance":
				it = v.Finance
			case "insurance":
				it = v.Insurance
			case "tax":
				it = v.Tax
			case "breakdown":
				it = v.Breakdown
			default:
				return fmt.Errorf("unknown vehicle slot %q", args[0])
			}

			if amount != "" {
				if _, ok := money.Parse(amount); !ok {
					return fmt.Errorf("cannot read %q as an amount", amount)
				}
				it.Amount = amount
			}
			if frequency != "" {
				f := model.Frequency(frequency)
				if !f.Known() {
					return fmt.Errorf("unknown frequency %q (one of: %s)", frequency, frequencyValues())
				}
				it.Frequency = f
			}
			if date != "" {
				if !dateutil.Valid(date) {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
				}
				it.Due = date
			}

			if err := s.SaveVehicleItem(args[0], it); err != nil {
				return err
			}
			fmt.Printf("  Updated %s.\n", it.Label)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Amount")
	cmd.Flags().StringVar(&frequency, "frequency", "", "One of: "+frequencyValues())
	cmd.Flags().StringVar(&date, "date", "", "Due date (YYYY-MM-DD)")
	return cmd
}
