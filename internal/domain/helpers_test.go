package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func money(amount string, cur currency.Unit) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: cur}
}

func randomProduct(price domain.Money) domain.Product {
	return domain.Product{
		ID:        uuid.MustParse(gofakeit.UUID()),
		Name:      gofakeit.ProductName(),
		Category:  gofakeit.ProductCategory(),
		Price:     price,
		Available: true,
	}
}

func randomClient(balance domain.Money) domain.Client {
	return domain.Client{
		ID:      uuid.MustParse(gofakeit.UUID()),
		Name:    gofakeit.Name(),
		Balance: balance,
	}
}

func tenPercent(_ domain.ProductRef, _ int, regularCost domain.Money) domain.Money {
	return regularCost.MulRate(decimal.RequireFromString("0.1"))
}

func assertOffer(t *testing.T, expected, actual domain.Offer) {
	t.Helper()

	opts := cmp.Options{
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
