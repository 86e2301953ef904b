package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ordering/internal/db"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

type reservationRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewReservation(pool *pgxpool.Pool) port.ReservationRepository {
	return &reservationRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

// GetReservation loads the reservation with its lines priced at the current catalog price.
func (r *reservationRepository) GetReservation(ctx context.Context, reservationID uuid.UUID) (domain.Reservation, error) {
	return withTx(ctx, r.pool, port.IsolationDefault, func(ctx context.Context) (domain.Reservation, error) {
		var res domain.Reservation

		q := queries(ctx, r.q)

		dbReservation, err := q.GetReservation(ctx, reservationID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return res, fmt.Errorf("q.GetReservation: %w", domain.ErrReservationNotFound)
			}
			return res, fmt.Errorf("q.GetReservation: %w", err)
		}

		dbItems, err := q.GetReservationItems(ctx, reservationID)
		if err != nil {
			return res, fmt.Errorf("q.GetReservationItems: %w", err)
		}

		res, err = mapDBReservationToDomain(dbReservation, dbItems)
		if err != nil {
			return res, fmt.Errorf("mapDBReservationToDomain: %w", err)
		}

		return res, nil
	})
}

// SaveReservation upserts the reservation header and replaces its lines.
func (r *reservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	if reservation.ID == uuid.Nil {
		return fmt.Errorf("reservationID is empty")
	}

	_, err := withTx(ctx, r.pool, port.IsolationDefault, func(ctx context.Context) (struct{}, error) {
		q := queries(ctx, r.q)

		if err := q.UpsertReservation(ctx, db.UpsertReservationParams{
			ID:       reservation.ID,
			ClientID: reservation.ClientID,
			Currency: reservation.Currency.String(),
			Status:   string(reservation.Status),
		}); err != nil {
			return struct{}{}, fmt.Errorf("q.UpsertReservation: %w", err)
		}

		if _, err := q.DeleteReservationItems(ctx, reservation.ID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteReservationItems: %w", err)
		}

		// TODO: batch insert with pgx.Batch once reservations get large
		for idx, item := range reservation.Items {
			arg := db.InsertReservationItemParams{
				ReservationID: reservation.ID,
				ProductID:     item.Product.ID,
				Position:      int32(idx),
				Quantity:      int32(item.Quantity),
			}
			if err := q.InsertReservationItem(ctx, arg); err != nil {
				return struct{}{}, fmt.Errorf("q.InsertReservationItem: %w", err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapDBReservationToDomain(row db.Reservation, rows []db.GetReservationItemsRow) (domain.Reservation, error) {
	var res domain.Reservation

	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return res, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	status, err := domain.ToReservationStatus(row.Status)
	if err != nil {
		return res, fmt.Errorf("domain.ToReservationStatus[%s]: %w", row.Status, err)
	}

	items, err := mapGetReservationItemsRowsToDomain(rows)
	if err != nil {
		return res, fmt.Errorf("mapGetReservationItemsRowsToDomain: %w", err)
	}

	return domain.Reservation{
		ID:        row.ID,
		ClientID:  row.ClientID,
		Currency:  parsedCurrency,
		Status:    status,
		Items:     items,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetReservationItemsRowsToDomain(rows []db.GetReservationItemsRow) ([]domain.ReservationItem, error) {
	var mapErr error

	items := lo.Map(rows, func(row db.GetReservationItemsRow, _ int) domain.ReservationItem {
		parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
		if err != nil {
			mapErr = errors.Join(mapErr, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err))
		}

		return domain.ReservationItem{
			Product: domain.ProductRef{
				ID:       row.ProductID,
				Name:     row.Name,
				Category: row.Category,
				Price:    domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			},
			Quantity: int(row.Quantity),
		}
	})
	if mapErr != nil {
		return nil, mapErr
	}

	return items, nil
}
