package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ordering/internal/db"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
	"golang.org/x/text/currency"
)

type paymentRepository struct {
	q *db.Queries
}

func NewPayment(pool *pgxpool.Pool) port.PaymentRepository {
	return &paymentRepository{
		q: db.New(pool),
	}
}

func (r *paymentRepository) InsertPayment(ctx context.Context, payment domain.Payment) error {
	if payment.ID == uuid.Nil {
		return fmt.Errorf("paymentID is empty")
	}

	arg := db.InsertPaymentParams{
		ID:             payment.ID,
		ClientID:       payment.ClientID,
		Amount:         payment.Amount.Amount,
		AmountCurrency: payment.Amount.Currency.String(),
	}

	if err := queries(ctx, r.q).InsertPayment(ctx, arg); err != nil {
		return fmt.Errorf("q.InsertPayment: %w", err)
	}

	return nil
}

func (r *paymentRepository) ListPayments(ctx context.Context, clientID uuid.UUID) ([]domain.Payment, error) {
	dbPayments, err := queries(ctx, r.q).ListPayments(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("q.ListPayments: %w", err)
	}

	payments := make([]domain.Payment, 0, len(dbPayments))
	for _, row := range dbPayments {
		parsedCurrency, err := currency.ParseISO(row.AmountCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", row.AmountCurrency, err)
		}

		payments = append(payments, domain.Payment{
			ID:        row.ID,
			ClientID:  row.ClientID,
			Amount:    domain.Money{Amount: row.Amount, Currency: parsedCurrency},
			CreatedAt: row.CreatedAt,
		})
	}

	return payments, nil
}
