package cmd

import (
	"fmt"
	"strings"

	"clearahead/internal/cli"
	"clearahead/internal/dateutil"
	"clearahead/internal/forecast"
	"clearahead/internal/model"
	"clearahead/internal/money"

	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List and edit savings goals",
	RunE:  runGoalsList,
}

func init() {
	goalsCmd.AddCommand(
		goalsToggleCmd(true), goalsToggleCmd(false),
		goalsAddCmd(), goalsRemoveCmd(),
		goalsIncludeCmd(true), goalsIncludeCmd(false),
	)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsList(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	goals, err := s.Goals()
	if err != nil {
		return err
	}
	enabled, err := s.Setting("goals_enabled", "0")
	if err != nil {
		return err
	}
	start, err := s.Setting("start_date", dateutil.Today())
	if err != nil {
		return err
	}

	state := cli.Muted("off")
	if enabled == "1" {
		state = cli.Positive("on")
	}

	fmt.Println()
	if len(goals) == 0 {
		fmt.Printf("  No goals yet (goals are %s). Add one with `clearahead goals add`.\n\n", state)
		return nil
	}

	currency := cfg.General.Currency
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		plan := forecast.PlanGoal(start, g)
		planCol := cli.Warn(plan.Message)
		if plan.OK {
			planCol = fmt.Sprintf("%s/wk over %dd",
				cli.FormatMoney(currency, forecast.RoundRate(plan.PerWeek)), plan.Days)
		}
		included := cli.Muted("no")
		if g.IncludeInCalc {
			included = cli.Positive("yes")
		}
		rows = append(rows, []string{g.ID, g.Name, g.TargetAmount, cli.FormatDate(g.TargetDate), included, planCol})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("GOALS (%s)", state),
		Headers: []string{"ID", "Name", "Target", "By", "Counted", "Plan"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func goalsToggleCmd(enable bool) *cobra.Command {
	use, short := "on", "Count goal set-asides in projections"
	if !enable {
		use, short = "off", "Ignore goals in projections"
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

			value, state := "0", "off"
			if enable {
				value, state = "1", "on"
			}
			if err := s.SetSetting("goals_enabled", value); err != nil {
				return err
			}
			fmt.Printf("  Goals are now %s.\n", state)
			return nil
		},
	}
}

func goalsAddCmd() *cobra.Command {
	var target, by string
	var include bool
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a savings goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			name := strings.Join(args, " ")
			if _, ok := money.Parse(target); !ok {
				return fmt.Errorf("cannot read %q as a target amount", target)
			}
			if !dateutil.Valid(by) {
				return fmt.Errorf("invalid target date %q (want YYYY-MM-DD)", by)
			}

			g := model.Goal{
				ID:            newID(slug(name)),
				Name:          name,
				TargetAmount:  target,
				TargetDate:    by,
				IncludeInCalc: include,
			}
			if err := s.SaveGoal(g); err != nil {
				return err
			}
			fmt.Printf("  Added goal %s (%s).\n", g.Name, g.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "Target amount")
	cmd.Flags().StringVar(&by, "by", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&include, "include", false, "Count this goal's set-asides in projections")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("by")
	return cmd
}

func goalsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.DeleteGoal(args[0]); err != nil {
				return err
			}
			fmt.Printf("  Removed goal %s.\n", args[0])
			return nil
		},
	}
}

func goalsIncludeCmd(include bool) *cobra.Command {
	use, short := "include <id>", "Count a goal's set-asides in projections"
	if !include {
		use, short = "exclude <id>", "Keep a goal but leave it out of projections"
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

			goals, err := s.Goals()
			if err != nil {
				return err
			}
			for _, g := range goals {
				if g.ID == args[0] {
					g.IncludeInCalc = include
					if err := s.SaveGoal(g); err != nil {
						return err
					}
					if include {
						fmt.Printf("  %s is now counted.\n", g.Name)
					} else {
						fmt.Printf("  %s is no longer counted.\n", g.Name)
					}
					return nil
				}
			}
			return fmt.Errorf("no such goal: %s", args[0])
		},
	}
}
