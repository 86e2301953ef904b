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
	"golang.org/x/text/currency"
)

type clientRepository struct {
	q *db.Queries
}

func NewClient(pool *pgxpool.Pool) port.ClientRepository {
	return &clientRepository{
		q: db.New(pool),
	}
}

func (r *clientRepository) GetClient(ctx context.Context, clientID uuid.UUID) (domain.Client, error) {
	var c domain.Client

	dbClient, err := queries(ctx, r.q).GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c, fmt.Errorf("q.GetClient: %w", domain.ErrClientNotFound)
		}
		return c, fmt.Errorf("q.GetClient: %w", err)
	}

	c, err = mapDBClientToDomain(dbClient)
	if err != nil {
		return c, fmt.Errorf("mapDBClientToDomain: %w", err)
	}

	return c, nil
}

func (r *clientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	if client.ID == uuid.Nil {
		return fmt.Errorf("clientID is empty")
	}

	arg := db.UpsertClientParams{
		ID:              client.ID,
		Name:            client.Name,
		BalanceAmount:   client.Balance.Amount,
		BalanceCurrency: client.Balance.Currency.String(),
	}

	if err := queries(ctx, r.q).UpsertClient(ctx, arg); err != nil {
		return fmt.Errorf("q.UpsertClient: %w", err)
	}

	return nil
}

func mapDBClientToDomain(row db.Client) (domain.Client, error) {
	parsedCurrency, err := currency.ParseISO(row.BalanceCurrency)
	if err != nil {
		return domain.Client{}, fmt.Errorf("currency[%s] is not valid: %w", row.BalanceCurrency, err)
	}

	return domain.Client{
		ID:      row.ID,
		Name:    row.Name,
		Balance: domain.Money{Amount: row.BalanceAmount, Currency: parsedCurrency},
	}, nil
}
