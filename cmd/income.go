package cmd

import (
	"fmt"
	"time"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/ledger"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/pipeline"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Record and list incomes",
}

var incomeAddCmd = &cobra.Command{
	Use:     "add <amount>",
	Short:   "Record an income",
	Example: "  savings income add 250000 --source Salary",
	Args:    cobra.ExactArgs(1),
	RunE:    runIncomeAdd,
}

var incomeRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an income",
	Args:    cobra.ExactArgs(1),
	RunE:    runIncomeRm,
}

var incomeLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List incomes of a month",
	RunE:    runIncomeLs,
}

func init() {
	incomeAddCmd.Flags().StringVar(&flagTxDate, "date", "", "Date YYYY-MM-DD (default: today)")
	incomeAddCmd.Flags().StringVarP(&flagTxSource, "source", "s", "", "Source (default: "+model.DefaultIncomeSource+")")
	incomeLsCmd.Flags().StringVar(&flagTxMonth, "month", "", "Month YYYY-MM (default: this month)")

	incomeCmd.AddCommand(incomeAddCmd, incomeRmCmd, incomeLsCmd)
	rootCmd.AddCommand(incomeCmd)
}

func runIncomeAdd(_ *cobra.Command, args []string) error {
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
	in, err := s.ledger.AddIncome(ledger.IncomeInput{Date: date, Amount: amount, Source: flagTxSource})
	if err != nil {
		return fmt.Errorf("adding income: %w", err)
	}
	fmt.Printf("  Recorded %s from %s on %s\n", cli.IncomeStyle.Render(cli.FormatMoney(in.Amount, s.currency())), in.Source, in.Date)
	return nil
}

func runIncomeRm(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ledger.DeleteIncome(args[0]); err != nil {
		return fmt.Errorf("deleting income: %w", err)
	}
	fmt.Println("  Deleted", args[0])
	return nil
}

func runIncomeLs(_ *cobra.Command, _ []string) error {
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
	incomes := pipeline.FilterIncomesByMonth(s.ledger.Incomes(), year, month)
	if len(incomes) == 0 {
		fmt.Printf("\n  No incomes in %s.\n", cli.FormatMonth(year, month))
		return nil
	}

	rows := make([][]string, 0, len(incomes)+2)
	for _, in := range incomes {
		rows = append(rows, []string{in.Date.String(), in.Source, cli.FormatMoney(in.Amount, cur), in.ID})
	}
	rows = append(rows, cli.SeparatorRow,
		[]string{"Total", "", cli.IncomeStyle.Render(cli.FormatMoney(pipeline.SumIncomes(incomes), cur)), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Incomes  " + cli.FormatMonth(year, month),
		Headers: []string{"Date", "Source", "Amount", "ID"},
		Rows:    rows,
	}))
	return nil
}

// monthArg parses a YYYY-MM flag, defaulting to the current month.
func monthArg(s *session, v string) (int, time.Month, error) {
	if v == "" {
		today := s.ledger.Today()
		return today.Year(), today.Month(), nil
	}
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q must be YYYY-MM", model.ErrInvalid, v)
	}
	return t.Year(), t.Month(), nil
}
