// Package cmd implements the savings CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/yutoain/savings-app/internal/config"
	"github.com/yutoain/savings-app/internal/ledger"
	"github.com/yutoain/savings-app/internal/log"
	"github.com/yutoain/savings-app/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagData    string
	flagBackend string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "savings",
	Short: "Household budget tracker",
	Long: "Track cards, expenses and income, see when card purchases are withdrawn\n" +
		"from the bank, and follow progress toward a savings goal.",
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "Data file (default: under $XDG_DATA_HOME/savings)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: json or sqlite")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// session is the opened state shared by every command.
type session struct {
	cfg    config.Config
	ledger *ledger.Ledger
	path   string
	logger *log.Logger
}

func (s *session) Close() {
	if err := s.ledger.Close(); err != nil {
		s.logger.Error("closing storage", log.FieldError, err)
	}
}

func newLogger() *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case flagVerbose:
		cfg.Level = slog.LevelDebug
	case flagQuiet:
		cfg.Level = slog.LevelError
	}
	l := log.New(cfg)
	log.SetDefault(l)
	return l
}

// loadConfig reads the config file and applies the persistent flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagData != "" {
		cfg.Storage.Path = flagData
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openSession is the shared data loading path used by all commands.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger()

	path := cfg.DataPath(store.DefaultFileName(cfg.Storage.Backend))
	backend, err := store.Open(cfg.Storage.Backend, path, logger)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	l, err := ledger.Open(backend, ledger.Options{Logger: logger})
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("opened data", log.FieldBackend, cfg.Storage.Backend, log.FieldPath, path)

	return &session{cfg: cfg, ledger: l, path: path, logger: logger}, nil
}

// currency returns the configured currency symbol.
func (s *session) currency() string {
	return s.cfg.General.Currency
}
