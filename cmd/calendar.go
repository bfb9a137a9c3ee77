package cmd

import (
	"fmt"
	"time"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/pipeline"

	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Month grid marking transactions and card withdrawals",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalendar,
}

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Incomes, expenses and withdrawals of one day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay,
}

func init() {
	rootCmd.AddCommand(calendarCmd, dayCmd)
}

func runCalendar(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	today := s.ledger.Today()
	year, month := today.Year(), today.Month()
	if len(args) == 1 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("%w: month %q must be YYYY-MM", model.ErrInvalid, args[0])
		}
		year, month = t.Year(), t.Month()
	}

	cal := pipeline.CalendarMonth(s.ledger.Document(), year, month, today)
	fmt.Println()
	fmt.Print(cli.RenderCalendar(cal))
	fmt.Printf("\n  %s withdrawal  bold: transactions\n\n", cli.WithdrawalStyle.Render("*"))
	return nil
}

func runDay(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	date := s.ledger.Today()
	if len(args) == 1 {
		if date, err = model.ParseDate(args[0]); err != nil {
			return err
		}
	}

	cur := s.currency()
	day := pipeline.Day(s.ledger.Document(), date)

	fmt.Println()
	fmt.Println(cli.RenderTitle(date.Format("Monday, January 2, 2006")))
	fmt.Println()

	if !day.HasTransactions && len(day.Withdrawals) == 0 {
		fmt.Println("  Nothing recorded on this day.")
		fmt.Println()
		return nil
	}

	var rows [][]string
	for _, in := range day.Incomes {
		rows = append(rows, []string{"income", in.Source, "", cli.IncomeStyle.Render(cli.FormatSigned(in.Amount, cur))})
	}
	for _, e := range day.Expenses {
		rows = append(rows, []string{"expense", e.Expense.Category, e.PaymentName, cli.ExpenseStyle.Render(cli.FormatSigned(-e.Expense.Amount, cur))})
	}
	if day.HasTransactions {
		rows = append(rows, cli.SeparatorRow, []string{"net", "", "", cli.FormatSigned(day.Net(), cur)})
	}
	if len(day.Withdrawals) > 0 {
		rows = append(rows, cli.SeparatorRow)
		for _, w := range day.Withdrawals {
			rows = append(rows, []string{"withdrawal", fmt.Sprintf("%d purchases", len(w.Expenses)), w.CardName,
				cli.WithdrawalStyle.Render(cli.FormatMoney(w.Total, cur))})
		}
		rows = append(rows, []string{"withdrawn", "", "", cli.WithdrawalStyle.Render(cli.FormatMoney(day.WithdrawalTotal, cur))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Type", "Label", "Paid with", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
