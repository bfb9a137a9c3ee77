package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Stored app settings (theme, notification time)",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored settings",
	RunE:  runSettingsShow,
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Set the theme, or toggle it when no value is given",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE:      runSettingsTheme,
}

var settingsNotifyCmd = &cobra.Command{
	Use:   "notify <HH:MM>",
	Short: "Set the daily notification time",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsNotify,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsThemeCmd, settingsNotifyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	st := s.ledger.Settings()
	fmt.Printf("  Theme:             %s\n", st.Theme)
	fmt.Printf("  Notification time: %s\n", st.NotificationTime)

	at, ok, err := s.ledger.LastSaved()
	switch {
	case err != nil:
		return err
	case ok:
		fmt.Printf("  Last saved:        %s\n", at.Local().Format("2006-01-02 15:04"))
	default:
		fmt.Println("  Last saved:        never")
	}
	return nil
}

func runSettingsTheme(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	var theme string
	if len(args) == 0 {
		theme, err = s.ledger.ToggleTheme()
	} else {
		theme = args[0]
		err = s.ledger.SetTheme(theme)
	}
	if err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	fmt.Println("  Theme:", theme)
	return nil
}

func runSettingsNotify(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ledger.SetNotificationTime(args[0]); err != nil {
		return fmt.Errorf("saving notification time: %w", err)
	}
	fmt.Println("  Notification time:", args[0])
	return nil
}
