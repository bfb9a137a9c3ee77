package cmd

import (
	"fmt"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagGoalCurrent  string
	flagGoalDeadline string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Savings goal progress and forecast",
	RunE:  runGoalShow,
}

var goalSetCmd = &cobra.Command{
	Use:     "set <amount>",
	Short:   "Set the savings goal",
	Example: "  savings goal set 1,000,000 --current 250000 --deadline 2025-03-31",
	Args:    cobra.ExactArgs(1),
	RunE:    runGoalSet,
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show progress and whether the goal is achievable",
	RunE:  runGoalShow,
}

var goalClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the savings goal",
	RunE:  runGoalClear,
}

func init() {
	goalSetCmd.Flags().StringVar(&flagGoalCurrent, "current", "0", "Current savings")
	goalSetCmd.Flags().StringVar(&flagGoalDeadline, "deadline", "", "Deadline YYYY-MM-DD")
	_ = goalSetCmd.MarkFlagRequired("deadline")

	goalCmd.AddCommand(goalSetCmd, goalShowCmd, goalClearCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalSet(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	amount, err := cli.ParseAmount(args[0])
	if err != nil {
		return err
	}
	current, err := cli.ParseAmount(flagGoalCurrent)
	if err != nil {
		return err
	}
	deadline, err := model.ParseDate(flagGoalDeadline)
	if err != nil {
		return err
	}
	if err := s.ledger.SetGoal(model.Goal{Amount: amount, CurrentSavings: current, Deadline: deadline}); err != nil {
		return fmt.Errorf("setting goal: %w", err)
	}
	fmt.Printf("  Goal set: %s by %s\n", cli.FormatMoney(amount, s.currency()), deadline)
	return nil
}

func runGoalShow(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	f, ok := pipeline.GoalForecast(s.ledger.Document(), s.ledger.Now(), s.cfg.Forecast.AssumedMonthlySavings)
	if !ok {
		fmt.Println("\n  No savings goal. Set one with `savings goal set`.")
		return nil
	}
	cur := s.currency()

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOAL  by " + f.Goal.Deadline.String()))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderProgressBar(f.Progress, 40))

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "Amount"},
		Rows: [][]string{
			{"Target", cli.FormatMoney(f.Goal.Amount, cur)},
			{"Current savings", cli.FormatMoney(f.Goal.CurrentSavings, cur)},
			{"Still needed", cli.FormatMoney(f.Needed, cur)},
			{"Time left", cli.FormatDays(f.DaysLeft)},
			cli.SeparatorRow,
			{fmt.Sprintf("Card withdrawals (%d months)", f.ProjectionMonths), cli.WithdrawalStyle.Render(cli.FormatMoney(f.Withdrawals, cur))},
			{"Average monthly spending", cli.FormatMoney(f.MonthlyAverage, cur)},
			{"Estimated spending", cli.FormatMoney(f.EstimatedSpending, cur)},
			{"Projected savings", cli.FormatMoney(f.ProjectedSavings, cur)},
		},
	}))
	fmt.Println()

	if f.Achievable {
		fmt.Println(cli.IncomeStyle.Render("  Achievable at the current pace."))
	} else {
		fmt.Println(cli.ExpenseStyle.Render(fmt.Sprintf("  Not achievable at the current pace: short by %s.",
			cli.FormatMoney(f.Needed-f.ProjectedSavings, cur))))
	}
	fmt.Println()
	return nil
}

func runGoalClear(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ledger.ClearGoal(); err != nil {
		return fmt.Errorf("clearing goal: %w", err)
	}
	fmt.Println("  Goal cleared")
	return nil
}
