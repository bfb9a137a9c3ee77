package ledger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yutoain/savings-app/internal/log"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/store"
)

// CardInput holds the editable card fields.
type CardInput struct {
	Name       string
	ClosingDay model.ClosingDay
	PaymentDay int
	Color      string // empty picks a palette color on create, keeps the old one on update
}

// AddCard registers a new card.
func (l *Ledger) AddCard(in CardInput) (model.Card, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	card := model.Card{
		ID:         l.newID(prefixCard),
		Name:       strings.TrimSpace(in.Name),
		ClosingDay: in.ClosingDay,
		PaymentDay: in.PaymentDay,
		Color:      strings.ToUpper(in.Color),
	}
	if card.Color == "" {
		card.Color = model.CardColors[len(l.cards)%len(model.CardColors)]
	}
	if err := card.Validate(); err != nil {
		return model.Card{}, err
	}

	cards := append(slices.Clone(l.cards), card)
	if err := l.persist(map[string]any{store.KeyCards: cards}); err != nil {
		return model.Card{}, err
	}
	l.cards = cards
	l.logger.Debug("added card", log.FieldOperation, log.OpCreate, log.FieldID, card.ID)
	return card, nil
}

// UpdateCard replaces the editable fields of an existing card. Withdrawal
// dates of expenses already recorded on the card are left unchanged.
func (l *Ledger) UpdateCard(id string, in CardInput) (model.Card, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.cardIndex(id)
	if i < 0 {
		return model.Card{}, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	card := l.cards[i]
	card.Name = strings.TrimSpace(in.Name)
	card.ClosingDay = in.ClosingDay
	card.PaymentDay = in.PaymentDay
	if in.Color != "" {
		card.Color = strings.ToUpper(in.Color)
	}
	if err := card.Validate(); err != nil {
		return model.Card{}, err
	}

	cards := slices.Clone(l.cards)
	cards[i] = card
	if err := l.persist(map[string]any{store.KeyCards: cards}); err != nil {
		return model.Card{}, err
	}
	l.cards = cards
	l.logger.Debug("updated card", log.FieldOperation, log.OpUpdate, log.FieldID, id)
	return card, nil
}

// DeleteCard removes a card and every expense charged to it. It returns the
// number of expenses removed.
func (l *Ledger) DeleteCard(id string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.cardIndex(id)
	if i < 0 {
		return 0, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}

	cards := make([]model.Card, 0, len(l.cards)-1)
	cards = append(cards, l.cards[:i]...)
	cards = append(cards, l.cards[i+1:]...)

	expenses := make([]model.Expense, 0, len(l.expenses))
	for _, e := range l.expenses {
		if e.PaymentMethod != id {
			expenses = append(expenses, e)
		}
	}
	removed := len(l.expenses) - len(expenses)

	if err := l.persist(map[string]any{
		store.KeyCards:    cards,
		store.KeyExpenses: expenses,
	}); err != nil {
		return 0, err
	}
	l.cards = cards
	l.expenses = expenses
	l.logger.Debug("deleted card", log.FieldOperation, log.OpDelete, log.FieldID, id, log.FieldCount, removed)
	return removed, nil
}
