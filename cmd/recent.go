package cmd

import (
	"fmt"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagRecentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Latest incomes and expenses, newest first",
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&flagRecentLimit, "limit", "n", 0, "Rows to show (default: recent_limit from config)")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	limit := flagRecentLimit
	if limit <= 0 {
		limit = s.cfg.General.RecentLimit
	}
	txs := pipeline.Recent(s.ledger.Document(), limit)
	if len(txs) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}

	cur := s.currency()
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		amount := cli.IncomeStyle.Render(cli.FormatSigned(tx.Signed(), cur))
		if tx.Kind == model.KindExpense {
			amount = cli.ExpenseStyle.Render(cli.FormatSigned(tx.Signed(), cur))
		}
		rows = append(rows, []string{tx.Date.String(), string(tx.Kind), tx.Label, tx.Method, amount, tx.ID})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recent transactions",
		Headers: []string{"Date", "Type", "Label", "Paid with", "Amount", "ID"},
		Rows:    rows,
	}))
	return nil
}
