package cmd

import (
	"fmt"
	"strings"
	"time"

	"clearahead/internal/cli"
	"clearahead/internal/dateutil"
	"clearahead/internal/model"
	"clearahead/internal/money"

	"github.com/spf13/cobra"
)

// obligationGroup builds the shared list/on/off/set/add/remove command
// tree used by both the income and bills commands.
type obligationGroup struct {
	kinds   []model.ObligationKind
	addKind model.ObligationKind
	noun    string
}

func (g obligationGroup) attach(parent *cobra.Command) {
	parent.AddCommand(g.onCmd(true), g.onCmd(false), g.setCmd(), g.addCmd(), g.removeCmd())
}

func (g obligationGroup) list(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	items, err := s.Obligations(g.kinds...)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(items))
	for _, o := range items {
		state := cli.Muted("off")
		if o.Enabled {
			state = cli.Positive("on")
		}
		amount := cli.Muted("—")
		if v, ok := money.Parse(o.Amount); ok {
			amount = cli.FormatMoney(cfg.General.Currency, v)
		}
		rows = append(rows, []string{
			o.ID,
			o.Label,
			state,
			amount,
			model.FrequencyLabel(o.Frequency),
			cli.FormatDate(o.Anchor),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   strings.ToUpper(g.noun),
		Headers: []string{"ID", "Label", "On", "Amount", "Frequency", "Next date"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Use `clearahead %s on <id>` and `clearahead %s set <id>` to fill things in.\n\n", g.noun, g.noun)
	return nil
}

func (g obligationGroup) onCmd(enable bool) *cobra.Command {
	use, short := "on <id>", "Enable an item"
	if !enable {
		use, short = "off <id>", "Disable an item"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			o, err := s.Obligation(args[0])
			if err != nil {
				return err
			}
			o.Enabled = enable
			if err := s.SaveObligation(o); err != nil {
				return err
			}
			state := "off"
			if enable {
				state = "on"
			}
			fmt.Printf("  %s is now %s.\n", o.Label, state)
			return nil
		},
	}
}

func (g obligationGroup) setCmd() *cobra.Command {
	var amount, frequency, date, label string
	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Update amount, frequency, date or label",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			o, err := s.Obligation(args[0])
			if err != nil {
				return err
			}
			if amount != "" {
				if _, ok := money.Parse(amount); !ok {
					return fmt.Errorf("cannot read %q as an amount (try 2900, 2,900 or 2 900,50)", amount)
				}
				o.Amount = amount
			}
			if frequency != "" {
				f := model.Frequency(frequency)
				if !f.Known() {
					return fmt.Errorf("unknown frequency %q (one of: %s)", frequency, frequencyValues())
				}
				o.Frequency = f
			}
			if date != "" {
				if !dateutil.Valid(date) {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
				}
				o.Anchor = date
			}
			if label != "" {
				o.Label = label
			}
			if err := s.SaveObligation(o); err != nil {
				return err
			}
			fmt.Printf("  Updated %s.\n", o.Label)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Amount, as you'd type it (2900, 2,900.50, ...)")
	cmd.Flags().StringVar(&frequency, "frequency", "", "One of: "+frequencyValues())
	cmd.Flags().StringVar(&date, "date", "", "Next payment / due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&label, "label", "", "Display label")
	return cmd
}

func (g obligationGroup) addCmd() *cobra.Command {
	var amount, frequency, date string
	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Add a custom item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			label := strings.Join(args, " ")
			freq := model.Monthly
			if frequency != "" {
				f := model.Frequency(frequency)
				if !f.Known() {
					return fmt.Errorf("unknown frequency %q (one of: %s)", frequency, frequencyValues())
				}
				freq = f
			}
			anchor := date
			if anchor == "" {
				anchor = dateutil.Today()
			} else if !dateutil.Valid(anchor) {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", anchor)
			}

			o := model.Obligation{
				ID:        newID(slug(label)),
				Kind:      g.addKind,
				Label:     label,
				Enabled:   true,
				Amount:    amount,
				Frequency: freq,
				Anchor:    anchor,
			}
			if err := s.SaveObligation(o); err != nil {
				return err
			}
			fmt.Printf("  Added %s (%s).\n", o.Label, o.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Amount")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "One of: "+frequencyValues())
	cmd.Flags().StringVar(&date, "date", "", "Next payment / due date (default: today)")
	return cmd
}

func (g obligationGroup) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			o, err := s.Obligation(args[0])
			if err != nil {
				return err
			}
			if err := s.DeleteObligation(o.ID); err != nil {
				return err
			}
			fmt.Printf("  Removed %s.\n", o.Label)
			return nil
		},
	}
}

func frequencyValues() string {
	vals := make([]string, len(model.Frequencies))
	for i, f := range model.Frequencies {
		vals[i] = string(f)
	}
	return strings.Join(vals, ", ")
}

func slug(label string) string {
	s := strings.ToLower(label)
	s = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, s)
	return strings.Trim(s, "_")
}

func newID(base string) string {
	return fmt.Sprintf("%s_%d", base, time.Now().UnixNano())
}
