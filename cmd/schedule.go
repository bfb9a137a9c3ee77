package cmd

import (
	"fmt"

	"github.com/yutoain/savings-app/internal/billing"
	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagMonths   int
	flagCardName string
	flagDate     string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Projected card withdrawals for the coming months",
	RunE:  runSchedule,
}

var withdrawalCmd = &cobra.Command{
	Use:   "withdrawal",
	Short: "Preview when a purchase on a card would be withdrawn",
	Example: `  savings withdrawal --card Visa --date 2024-03-16
  savings withdrawal --card card_1f2e...`,
	RunE: runWithdrawal,
}

func init() {
	scheduleCmd.Flags().IntVarP(&flagMonths, "months", "m", 0, "Months to project (default: projection_months from config)")
	withdrawalCmd.Flags().StringVar(&flagCardName, "card", "", "Card name or id")
	withdrawalCmd.Flags().StringVar(&flagDate, "date", "", "Purchase date YYYY-MM-DD (default: today)")
	_ = withdrawalCmd.MarkFlagRequired("card")
	rootCmd.AddCommand(scheduleCmd, withdrawalCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	months := flagMonths
	if months <= 0 {
		months = s.cfg.General.ProjectionMonths
	}
	schedule := pipeline.UpcomingWithdrawals(s.ledger.Document(), s.ledger.Now(), months)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("UPCOMING WITHDRAWALS  Next %d months", months)))
	fmt.Println()
	printSchedule(schedule, s.currency())

	totals := make([]float64, len(schedule))
	for i, m := range schedule {
		totals[i] = float64(m.Total)
	}
	fmt.Printf("\n  Trend %s  total %s\n\n",
		cli.RenderSparkline(totals),
		cli.FormatMoney(pipeline.SumWithdrawals(schedule), s.currency()))
	return nil
}

// printSchedule prints one table section per month.
func printSchedule(schedule []model.MonthlyWithdrawal, cur string) {
	var rows [][]string
	for i, m := range schedule {
		if i > 0 {
			rows = append(rows, cli.SeparatorRow)
		}
		rows = append(rows, []string{m.Label(), "", "", cli.WithdrawalStyle.Render(cli.FormatMoney(m.Total, cur))})
		for _, d := range m.Details {
			rows = append(rows, []string{"", d.Date.String(), d.CardName, cli.FormatMoney(d.Amount, cur)})
		}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Upcoming withdrawals",
		Headers: []string{"Month", "Date", "Card", "Amount"},
		Rows:    rows,
	}))
}

func runWithdrawal(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	card, err := findCard(s.ledger.Cards(), flagCardName)
	if err != nil {
		return err
	}
	date := s.ledger.Today()
	if flagDate != "" {
		if date, err = model.ParseDate(flagDate); err != nil {
			return err
		}
	}

	w := billing.ForCard(card, date)
	fmt.Printf("\n  %s (closes %s, pays on the %d)\n", card.Name, card.ClosingDay, card.PaymentDay)
	fmt.Printf("  Purchase on %s is withdrawn on %s\n\n", date, cli.WithdrawalStyle.Render(w.String()))
	return nil
}
