package cmd

import (
	"fmt"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/ledger"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagTxDate     string
	flagTxMethod   string
	flagTxCategory string
	flagTxSource   string
	flagTxMonth    string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and list expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:     "add <amount>",
	Short:   "Record an expense",
	Example: "  savings expense add 3200 --category Food\n  savings expense add 12,000 --card Visa --date 2024-03-16",
	Args:    cobra.ExactArgs(1),
	RunE:    runExpenseAdd,
}

var expenseRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an expense",
	Args:    cobra.ExactArgs(1),
	RunE:    runExpenseRm,
}

var expenseLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List expenses of a month",
	RunE:    runExpenseLs,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagTxDate, "date", "", "Date YYYY-MM-DD (default: today)")
	expenseAddCmd.Flags().StringVar(&flagTxMethod, "card", model.Cash, "Card name or id, or cash")
	expenseAddCmd.Flags().StringVarP(&flagTxCategory, "category", "c", "", "Category (default: "+model.DefaultCategory+")")
	expenseLsCmd.Flags().StringVar(&flagTxMonth, "month", "", "Month YYYY-MM (default: this month)")

	expenseCmd.AddCommand(expenseAddCmd, expenseRmCmd, expenseLsCmd)
	rootCmd.AddCommand(expenseCmd)
}

// txDate parses --date, defaulting to today.
func txDate(s *session) (model.Date, error) {
	if flagTxDate == "" {
		return s.ledger.Today(), nil
	}
	return model.ParseDate(flagTxDate)
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	amount, err := cli.ParseAmount(args[0])
	if err != nil {
		return err
	}
	date, err := txDate(s)
	if err != nil {
		return err
	}
	method, err := paymentMethod(s.ledger.Cards(), flagTxMethod)
	if err != nil {
		return err
	}

	e, err := s.ledger.AddExpense(ledger.ExpenseInput{
		Date:          date,
		Amount:        amount,
		PaymentMethod: method,
		Category:      flagTxCategory,
	})
	if err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}

	fmt.Printf("  Recorded %s for %s on %s", cli.FormatMoney(e.Amount, s.currency()), e.Category, e.Date)
	if e.WithdrawalDate != nil {
		fmt.Printf(", withdrawn on %s", cli.WithdrawalStyle.Render(e.WithdrawalDate.String()))
	}
	fmt.Println()
	return nil
}

func runExpenseRm(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ledger.DeleteExpense(args[0]); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}
	fmt.Println("  Deleted", args[0])
	return nil
}

func runExpenseLs(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	year, month, err := monthArg(s, flagTxMonth)
	if err != nil {
		return err
	}
	cur := s.currency()
	cards := s.ledger.Cards()
	expenses := pipeline.FilterExpensesByMonth(s.ledger.Expenses(), year, month)
	if len(expenses) == 0 {
		fmt.Printf("\n  No expenses in %s.\n", cli.FormatMonth(year, month))
		return nil
	}

	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		withdrawal := ""
		if e.WithdrawalDate != nil {
			withdrawal = e.WithdrawalDate.String()
		}
		rows = append(rows, []string{
			e.Date.String(), e.Category, pipeline.PaymentName(cards, e.PaymentMethod),
			withdrawal, cli.FormatMoney(e.Amount, cur), e.ID,
		})
	}
	rows = append(rows, cli.SeparatorRow,
		[]string{"Total", "", "", "", cli.ExpenseStyle.Render(cli.FormatMoney(pipeline.SumExpenses(expenses), cur)), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Expenses  " + cli.FormatMonth(year, month),
		Headers: []string{"Date", "Category", "Paid with", "Withdrawal", "Amount", "ID"},
		Rows:    rows,
	}))
	return nil
}
