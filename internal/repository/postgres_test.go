package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("ordering"),
		postgres.WithUsername("ordering"),
		postgres.WithPassword("ordering"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, connStr, nil
}

// newMigratedPool connects to the container and applies the embedded migrations
func newMigratedPool(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := repository.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repository.Migrate: %w", err)
	}

	return pool, nil
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE payments, purchases, reservation_items, reservations, products, clients CASCADE")
	return err
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func randomMoney(cur currency.Unit, minAmount, maxAmount float64) domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(minAmount, maxAmount)).Round(2),
		Currency: cur,
	}
}

func randomClient(cur currency.Unit) domain.Client {
	return domain.Client{
		ID:      uuid.MustParse(gofakeit.UUID()),
		Name:    gofakeit.Name(),
		Balance: randomMoney(cur, 500, 5000),
	}
}

func randomProduct(cur currency.Unit) domain.Product {
	return domain.Product{
		ID:        uuid.MustParse(gofakeit.UUID()),
		Name:      gofakeit.ProductName(),
		Category:  gofakeit.ProductCategory(),
		Price:     randomMoney(cur, 1, 100),
		Available: true,
	}
}

var cmpOpts = cmp.Options{
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
	cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}),
	cmpopts.EquateEmpty(),
}

func assertEqual[T any](t *testing.T, expected, actual T, opts ...cmp.Option) {
	t.Helper()

	diff := cmp.Diff(expected, actual, append(cmp.Options{cmpOpts}, opts...))
	assert.Empty(t, diff)
}

