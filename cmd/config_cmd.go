package cmd

import (
	"fmt"

	"github.com/yutoain/savings-app/internal/config"
	"github.com/yutoain/savings-app/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Projection months: %d\n", cfg.General.ProjectionMonths)
	fmt.Printf("    Recent limit:      %d\n", cfg.General.RecentLimit)
	fmt.Printf("    Currency:          %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend: %s\n", cfg.Storage.Backend)
	fmt.Printf("    Path:    %s\n", cfg.DataPath(store.DefaultFileName(cfg.Storage.Backend)))
	fmt.Println()

	fmt.Println("  [Forecast]")
	fmt.Printf("    Assumed monthly savings: %d\n", cfg.Forecast.AssumedMonthlySavings)
	fmt.Println()

	fmt.Println("  [Appearance]")
	if cfg.Appearance.Theme != "" {
		fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	} else {
		fmt.Println("    Theme: follows the light/dark setting")
	}
	fmt.Println()

	fmt.Println("  Run `savings setup` to reconfigure.")
	return nil
}
