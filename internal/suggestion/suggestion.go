// Package suggestion finds replacements for products that are out of stock.
package suggestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type service struct {
	products port.ProductRepository
}

func NewService(products port.ProductRepository) port.SuggestionService {
	return &service{products: products}
}

// SuggestEquivalent returns the available product of the same category and
// currency that the client can afford and whose price is closest to the original.
func (s *service) SuggestEquivalent(ctx context.Context, product domain.Product, client domain.Client) (domain.Product, error) {
	var maxPrice *decimal.Decimal
	if client.Balance.SameCurrency(product.Price) {
		maxPrice = &client.Balance.Amount
	}

	candidates, err := s.products.SearchProducts(ctx, domain.ProductFilter{
		ExcludeIDs:    []uuid.UUID{product.ID},
		Categories:    []string{product.Category},
		AvailableOnly: true,
		MaxPrice:      maxPrice,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.SearchProducts: %w", err)
	}

	candidates = lo.Filter(candidates, func(p domain.Product, _ int) bool {
		return p.IsAvailable() && p.Price.SameCurrency(product.Price) && client.CanAfford(p.Price)
	})
	if len(candidates) == 0 {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", product.ID, domain.ErrNoEquivalent)
	}

	best := lo.MinBy(candidates, func(a, b domain.Product) bool {
		return priceDistance(a, product).LessThan(priceDistance(b, product))
	})

	return best, nil
}

func priceDistance(candidate, original domain.Product) decimal.Decimal {
	return candidate.Price.Amount.Sub(original.Price.Amount).Abs()
}
