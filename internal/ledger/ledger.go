package ledger

import (
	"fmt"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// Ledger applies kind-indexed credit/debit/transfer operations to the per-user
// balances map of one state aggregate. Currency transfers are purely internal
// ledger entries; no overdraft check is enforced, so a debit may drive a
// counter negative.
type Ledger struct {
	balances map[string]model.Balances
}

// New wraps the balances map of a state aggregate.
func New(balances map[string]model.Balances) Ledger {
	return Ledger{balances: balances}
}

// DefaultBalances is the balance record every user starts with.
func DefaultBalances() model.Balances {
	return model.Balances{
		Cash:        0,
		Points:      100, // starting points
		FavorTokens: 2,   // starting favor tokens
		TimeBank:    0,
	}
}

// BalanceFor returns the user's balances, or the default record for unknown
// users without creating a persisted entry.
func (l Ledger) BalanceFor(userID string) model.Balances {
	if b, ok := l.balances[userID]; ok {
		return b
	}
	return DefaultBalances()
}

// Credit adds the currency amount to the matching counter of the user's
// balances and returns the updated record.
func (l Ledger) Credit(userID string, c model.Currency) (model.Balances, error) {
	return l.adjust(userID, c.Kind, c.Amount)
}

// Debit removes the currency amount from the matching counter of the user's
// balances and returns the updated record.
func (l Ledger) Debit(userID string, c model.Currency) (model.Balances, error) {
	return l.adjust(userID, c.Kind, -c.Amount)
}

// Transfer moves the currency amount from one user to the other: debit the
// sender, then credit the receiver, touching only the matching counter.
func (l Ledger) Transfer(fromUserID, toUserID string, c model.Currency) error {
	if _, err := l.Debit(fromUserID, c); err != nil {
		return fmt.Errorf("ledger: debit %s: %w", fromUserID, err)
	}
	if _, err := l.Credit(toUserID, c); err != nil {
		return fmt.Errorf("ledger: credit %s: %w", toUserID, err)
	}
	return nil
}

func (l Ledger) adjust(userID string, kind model.CurrencyKind, delta float64) (model.Balances, error) {
	if !kind.Valid() {
		return model.Balances{}, fmt.Errorf("ledger: %w - unknown kind %q", auctionerrors.ErrInvalidCurrency, kind)
	}

	b := l.BalanceFor(userID)
	if err := b.Add(kind, delta); err != nil {
		return model.Balances{}, fmt.Errorf("ledger: %w", err)
	}
	l.balances[userID] = b
	return b, nil
}
