package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Client struct {
	ID      uuid.UUID
	Name    string
	Balance Money
}

// CanAfford is false for amounts in another currency than the balance.
func (c Client) CanAfford(amount Money) bool {
	if !c.Balance.SameCurrency(amount) {
		return false
	}
	return c.Balance.Amount.GreaterThanOrEqual(amount.Amount)
}

// Charge debits the balance and returns the payment for it.
// Persisting the payment is up to the caller.
func (c *Client) Charge(amount Money) (Payment, error) {
	if amount.IsNegative() {
		return Payment{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	if !c.CanAfford(amount) {
		return Payment{}, NewDomainOperationError(c.ID, "client has insufficient money", ErrInsufficientFunds)
	}

	balance, err := c.Balance.Sub(amount)
	if err != nil {
		return Payment{}, fmt.Errorf("c.Balance.Sub: %w", err)
	}
	c.Balance = balance

	return Payment{
		ID:       uuid.New(),
		ClientID: c.ID,
		Amount:   amount,
	}, nil
}
