package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ClientID      uuid.UUID
	Items         []OfferItem
	Price         Money
	Status        PurchaseStatus

	CreatedAt   time.Time
	ConfirmedAt *time.Time
}

// NewPurchase binds a pending purchase to the offer the client agreed to.
// The price is taken from the offer as is.
func NewPurchase(reservationID uuid.UUID, client Client, offer Offer) Purchase {
	return Purchase{
		ID:            uuid.New(),
		ReservationID: reservationID,
		ClientID:      client.ID,
		Items:         offer.Items,
		Price:         offer.TotalCost,
		Status:        PurchaseStatusPending,
	}
}

func (p Purchase) TotalCost() Money {
	return p.Price
}

func (p *Purchase) Confirm(now time.Time) error {
	if p.Status != PurchaseStatusPending {
		return fmt.Errorf("%w: purchase[%s] is %s", ErrInvalidState, p.ID, p.Status)
	}

	p.Status = PurchaseStatusConfirmed
	p.ConfirmedAt = &now
	return nil
}

func (p Purchase) IsConfirmed() bool {
	return p.Status == PurchaseStatusConfirmed
}
