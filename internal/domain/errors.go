package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrInvalidState        = errors.New("invalid state")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrOfferChanged        = errors.New("offer changed")
	ErrTransactionConflict = errors.New("transaction conflict")
	ErrCurrencyMismatch    = errors.New("currency mismatch")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUnauthenticated     = errors.New("unauthenticated")

	ErrAlreadyClosed   = fmt.Errorf("%w: reservation is already closed", ErrInvalidOperation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", ErrInvalidOperation)

	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)
	ErrClientNotFound      = fmt.Errorf("client %w", ErrNotFound)
	ErrProductNotFound     = fmt.Errorf("product %w", ErrNotFound)
	ErrPurchaseNotFound    = fmt.Errorf("purchase %w", ErrNotFound)
	ErrNoEquivalent        = fmt.Errorf("equivalent product %w", ErrNotFound)
)

// DomainOperationError is a business rule violation on a specific aggregate.
type DomainOperationError struct {
	AggregateID uuid.UUID
	Reason      string
	Err         error
}

func NewDomainOperationError(aggregateID uuid.UUID, reason string, err error) *DomainOperationError {
	return &DomainOperationError{AggregateID: aggregateID, Reason: reason, Err: err}
}

func (e *DomainOperationError) Error() string {
	return fmt.Sprintf("aggregate[%s]: %s", e.AggregateID, e.Reason)
}

func (e *DomainOperationError) Unwrap() error {
	return e.Err
}

// OfferChangedError carries both offers so the caller can show the fresh one and re-confirm.
type OfferChangedError struct {
	ReservationID uuid.UUID
	Seen          Offer
	Current       Offer
}

func (e *OfferChangedError) Error() string {
	return fmt.Sprintf("reservation[%s]: offer changed: seen %s, current %s",
		e.ReservationID, e.Seen.TotalCost, e.Current.TotalCost)
}

func (e *OfferChangedError) Unwrap() error {
	return ErrOfferChanged
}
