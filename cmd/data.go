package cmd

import (
	"fmt"
	"os"

	"github.com/yutoain/savings-app/internal/ledger"
	"github.com/yutoain/savings-app/internal/log"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagYes bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a JSON backup of all data",
	Long: "Write a JSON backup of cards, expenses, incomes, the goal and settings.\n" +
		"Without a file argument the backup is named savings-app-backup-YYYY-MM-DD.json.\n" +
		"Use - to write to stdout.",
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	now := s.ledger.Now()
	data, err := s.ledger.Export(now)
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	path := ledger.ExportFileName(now)
	if len(args) == 1 {
		path = args[0]
	}
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	fmt.Println("  Exported to", path)
	return nil
}

// errImportFailed is the one message shown for any unreadable backup.
var errImportFailed = fmt.Errorf("import failed: %w", ledger.ErrMalformedSnapshot)

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}
	snap, err := ledger.ParseSnapshot(data)
	if err != nil {
		newLogger().Debug("rejected backup", log.FieldPath, args[0], log.FieldError, err)
		return errImportFailed
	}

	if !flagYes {
		confirm := false
		err := huh.NewConfirm().
			Title("Replace all current data?").
			Description(fmt.Sprintf("%d cards, %d expenses and %d incomes will be loaded from %s.",
				len(snap.Cards), len(snap.Expenses), len(snap.Incomes), args[0])).
			Affirmative("Replace").
			Negative("Cancel").
			Value(&confirm).
			Run()
		if err != nil {
			return fmt.Errorf("confirming import: %w", err)
		}
		if !confirm {
			fmt.Println("  Import cancelled")
			return nil
		}
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ledger.Import(snap); err != nil {
		return fmt.Errorf("importing: %w", err)
	}
	fmt.Printf("  Imported %d cards, %d expenses, %d incomes\n", len(snap.Cards), len(snap.Expenses), len(snap.Incomes))
	return nil
}
