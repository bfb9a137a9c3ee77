package cmd

import (
	"fmt"
	"strings"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/ledger"
	"github.com/yutoain/savings-app/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCardClosing string
	flagCardPayment int
	flagCardColor   string
	flagCardRename  string
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage payment cards",
}

var cardAddCmd = &cobra.Command{
	Use:     "add <name>",
	Short:   "Register a card",
	Example: "  savings card add Visa --closing 15 --payment 10\n  savings card add Master --closing month-end --payment 27",
	Args:    cobra.ExactArgs(1),
	RunE:    runCardAdd,
}

var cardEditCmd = &cobra.Command{
	Use:   "edit <card>",
	Short: "Change a card's name, closing day, payment day or color",
	Long: "Change a card. Withdrawal dates of expenses already recorded on the\n" +
		"card keep the dates computed when they were added.",
	Args: cobra.ExactArgs(1),
	RunE: runCardEdit,
}

var cardRmCmd = &cobra.Command{
	Use:     "rm <card>",
	Aliases: []string{"delete"},
	Short:   "Delete a card and every expense paid with it",
	Args:    cobra.ExactArgs(1),
	RunE:    runCardRm,
}

var cardLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List cards",
	RunE:    runCardLs,
}

func init() {
	for _, c := range []*cobra.Command{cardAddCmd, cardEditCmd} {
		c.Flags().StringVar(&flagCardClosing, "closing", "", "Closing day: 1-31 or month-end")
		c.Flags().IntVar(&flagCardPayment, "payment", 0, "Payment day of the following month: 1-31")
		c.Flags().StringVar(&flagCardColor, "color", "", "Display color #RRGGBB")
	}
	_ = cardAddCmd.MarkFlagRequired("closing")
	_ = cardAddCmd.MarkFlagRequired("payment")
	cardEditCmd.Flags().StringVar(&flagCardRename, "name", "", "New name")

	cardCmd.AddCommand(cardAddCmd, cardEditCmd, cardRmCmd, cardLsCmd)
	rootCmd.AddCommand(cardCmd)
}

func runCardAdd(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	closing, err := model.ParseClosingDay(flagCardClosing)
	if err != nil {
		return err
	}
	card, err := s.ledger.AddCard(ledger.CardInput{
		Name:       args[0],
		ClosingDay: closing,
		PaymentDay: flagCardPayment,
		Color:      flagCardColor,
	})
	if err != nil {
		return fmt.Errorf("adding card: %w", err)
	}
	fmt.Printf("  Added %s (%s)\n", card.Name, card.ID)
	return nil
}

func runCardEdit(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	card, err := findCard(s.ledger.Cards(), args[0])
	if err != nil {
		return err
	}
	in := ledger.CardInput{
		Name:       card.Name,
		ClosingDay: card.ClosingDay,
		PaymentDay: card.PaymentDay,
		Color:      flagCardColor,
	}
	if cmd.Flags().Changed("name") {
		in.Name = flagCardRename
	}
	if cmd.Flags().Changed("closing") {
		if in.ClosingDay, err = model.ParseClosingDay(flagCardClosing); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("payment") {
		in.PaymentDay = flagCardPayment
	}

	updated, err := s.ledger.UpdateCard(card.ID, in)
	if err != nil {
		return fmt.Errorf("updating card: %w", err)
	}
	fmt.Printf("  Updated %s: closes %s, pays on the %d\n", updated.Name, updated.ClosingDay, updated.PaymentDay)
	return nil
}

func runCardRm(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	card, err := findCard(s.ledger.Cards(), args[0])
	if err != nil {
		return err
	}
	n, err := s.ledger.DeleteCard(card.ID)
	if err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}
	fmt.Printf("  Deleted %s and %d expenses\n", card.Name, n)
	return nil
}

func runCardLs(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cards := s.ledger.Cards()
	if len(cards) == 0 {
		fmt.Println("\n  No cards registered. Add one with `savings card add`.")
		return nil
	}

	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		swatch := cli.ColorSwatch(c.Color)
		rows = append(rows, []string{swatch + " " + c.Name, c.ClosingDay.String(), fmt.Sprint(c.PaymentDay), c.Color, c.ID})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Card", "Closes", "Pays", "Color", "ID"},
		Rows:    rows,
	}))
	return nil
}

// findCard resolves a card by id, or by case-insensitive name.
func findCard(cards []model.Card, ref string) (model.Card, error) {
	ref = strings.TrimSpace(ref)
	for _, c := range cards {
		if c.ID == ref {
			return c, nil
		}
	}
	var match []model.Card
	for _, c := range cards {
		if strings.EqualFold(c.Name, ref) {
			match = append(match, c)
		}
	}
	switch len(match) {
	case 1:
		return match[0], nil
	case 0:
		return model.Card{}, fmt.Errorf("card %q: %w", ref, ledger.ErrCardNotFound)
	default:
		return model.Card{}, fmt.Errorf("card name %q is ambiguous, use the id", ref)
	}
}

// paymentMethod maps "cash" or a card reference to a stored payment method.
func paymentMethod(cards []model.Card, ref string) (string, error) {
	if ref == "" || strings.EqualFold(ref, model.Cash) {
		return model.Cash, nil
	}
	c, err := findCard(cards, ref)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}
