package tui

import (
	"strconv"
	"strings"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/config"
	"github.com/yutoain/savings-app/internal/store"
	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the first-run wizard.
type SetupValues struct {
	Backend        string
	Currency       string
	AssumedSavings string
	Theme          string
}

// NewSetupForm builds the first-run configuration wizard, prefilled from cfg.
// It is shared by the TUI and the setup command.
func NewSetupForm(cfg config.Config, v *SetupValues) *huh.Form {
	v.Backend = cfg.Storage.Backend
	v.Currency = cfg.General.Currency
	v.AssumedSavings = strconv.FormatInt(cfg.Forecast.AssumedMonthlySavings, 10)
	v.Theme = cfg.Appearance.Theme

	themeOpts := []huh.Option[string]{huh.NewOption("Follow light/dark setting", "")}
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to savings").
				Description("Let's set up a few things. Run `savings setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Storage").
				Options(
					huh.NewOption("JSON file", store.BackendJSON),
					huh.NewOption("SQLite database", store.BackendSQLite),
				).
				Value(&v.Backend),
			huh.NewInput().
				Title("Currency symbol").
				Value(&v.Currency),
			huh.NewInput().
				Title("Monthly savings you can set aside").
				Description("Used by the goal forecast").
				Value(&v.AssumedSavings).
				Validate(validateNonNegativeAmount),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	).WithShowHelp(true)
}

// Apply copies the wizard answers onto cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.Storage.Backend = v.Backend
	if c := strings.TrimSpace(v.Currency); c != "" {
		cfg.General.Currency = c
	}
	if n, err := cli.ParseAmount(v.AssumedSavings); err == nil && n >= 0 {
		cfg.Forecast.AssumedMonthlySavings = n
	}
	cfg.Appearance.Theme = v.Theme
}

func (a *App) saveSetupConfig() error {
	a.forms.SetupValues.Apply(&a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	theme.Apply(a.cfg.Appearance.Theme, a.ledger.Settings().Theme)
	return config.Save(a.cfg)
}
