package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ordering/internal/db"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
	"golang.org/x/text/currency"
)

type purchaseRepository struct {
	q *db.Queries
}

func NewPurchase(pool *pgxpool.Pool) port.PurchaseRepository {
	return &purchaseRepository{
		q: db.New(pool),
	}
}

func (r *purchaseRepository) GetPurchase(ctx context.Context, purchaseID uuid.UUID) (domain.Purchase, error) {
	var p domain.Purchase

	dbPurchase, err := queries(ctx, r.q).GetPurchase(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, fmt.Errorf("q.GetPurchase: %w", domain.ErrPurchaseNotFound)
		}
		return p, fmt.Errorf("q.GetPurchase: %w", err)
	}

	p, err = mapDBPurchaseToDomain(dbPurchase)
	if err != nil {
		return p, fmt.Errorf("mapDBPurchaseToDomain: %w", err)
	}

	return p, nil
}

func (r *purchaseRepository) GetPurchaseByReservation(ctx context.Context, reservationID uuid.UUID) (domain.Purchase, error) {
	var p domain.Purchase

	dbPurchase, err := queries(ctx, r.q).GetPurchaseByReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, fmt.Errorf("q.GetPurchaseByReservation: %w", domain.ErrPurchaseNotFound)
		}
		return p, fmt.Errorf("q.GetPurchaseByReservation: %w", err)
	}

	p, err = mapDBPurchaseToDomain(dbPurchase)
	if err != nil {
		return p, fmt.Errorf("mapDBPurchaseToDomain: %w", err)
	}

	return p, nil
}

// SavePurchase inserts a new purchase or updates the status of an existing one.
// Items and price are written once.
func (r *purchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	if purchase.ID == uuid.Nil {
		return fmt.Errorf("purchaseID is empty")
	}

	items, err := json.Marshal(emptySliceIfNil(purchase.Items))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	arg := db.UpsertPurchaseParams{
		ID:            purchase.ID,
		ReservationID: purchase.ReservationID,
		ClientID:      purchase.ClientID,
		Items:         items,
		TotalAmount:   purchase.Price.Amount,
		TotalCurrency: purchase.Price.Currency.String(),
		Status:        string(purchase.Status),
		ConfirmedAt:   purchase.ConfirmedAt,
	}

	if err := queries(ctx, r.q).UpsertPurchase(ctx, arg); err != nil {
		if isPgError(err, codeUniqueViolation) {
			// another purchase exists for the reservation, so it has been confirmed already
			return fmt.Errorf("q.UpsertPurchase: %w", domain.ErrAlreadyClosed)
		}
		return fmt.Errorf("q.UpsertPurchase: %w", err)
	}

	return nil
}

func mapDBPurchaseToDomain(row db.Purchase) (domain.Purchase, error) {
	var p domain.Purchase

	parsedCurrency, err := currency.ParseISO(row.TotalCurrency)
	if err != nil {
		return p, fmt.Errorf("currency[%s] is not valid: %w", row.TotalCurrency, err)
	}

	status, err := domain.ToPurchaseStatus(row.Status)
	if err != nil {
		return p, fmt.Errorf("domain.ToPurchaseStatus[%s]: %w", row.Status, err)
	}

	var items []domain.OfferItem
	if err := json.Unmarshal(row.Items, &items); err != nil {
		return p, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return domain.Purchase{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		ClientID:      row.ClientID,
		Items:         items,
		Price:         domain.Money{Amount: row.TotalAmount, Currency: parsedCurrency},
		Status:        status,
		CreatedAt:     row.CreatedAt,
		ConfirmedAt:   row.ConfirmedAt,
	}, nil
}

func emptySliceIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
