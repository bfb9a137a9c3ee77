package cmd

import (
	"fmt"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/pipeline"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "This month's figures, card usage and upcoming withdrawals",
	RunE:    runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	now := s.ledger.Now()
	cur := s.currency()
	d := pipeline.Dashboard(s.ledger.Document(), now, pipeline.DashboardOptions{
		ScheduleMonths: s.cfg.General.ProjectionMonths,
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS  " + cli.FormatMonth(d.Year, d.Month)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Summary", "Amount"},
		Rows: [][]string{
			{"Income this month", cli.IncomeStyle.Render(cli.FormatMoney(d.MonthIncome, cur))},
			{"Cash spent", cli.FormatMoney(d.CashSpent, cur)},
			{"Card spent", cli.FormatMoney(d.CardSpent, cur)},
			cli.SeparatorRow,
			{"Balance", cli.FormatMoney(d.Balance, cur)},
			{"Next withdrawal", cli.WithdrawalStyle.Render(cli.FormatMoney(d.NextWithdrawal, cur))},
			{"Balance after withdrawal", cli.FormatMoney(d.AfterBalance, cur)},
		},
	}))
	fmt.Println()

	fmt.Println("  Card usage")
	fmt.Print(cli.RenderUsage(d.Usage, cur, 24))
	fmt.Println()

	printSchedule(d.Schedule, cur)
	fmt.Println()
	fmt.Println(cli.RenderMotivation(d.Motivation))
	fmt.Println()
	return nil
}
