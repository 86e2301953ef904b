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

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var p domain.Product

	dbProduct, err := queries(ctx, r.q).GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, fmt.Errorf("q.GetProduct: %w", domain.ErrProductNotFound)
		}
		return p, fmt.Errorf("q.GetProduct: %w", err)
	}

	p, err = mapDBProductToDomain(dbProduct)
	if err != nil {
		return p, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return p, nil
}

func (r *productRepository) SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	dbProducts, err := queries(ctx, r.q).SearchProducts(ctx, db.SearchProductsParams{
		ExcludeIds:    nilSliceIfEmpty(filter.ExcludeIDs),
		Categories:    nilSliceIfEmpty(filter.Categories),
		AvailableOnly: filter.AvailableOnly,
		MaxPrice:      filter.MaxPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("q.SearchProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(dbProducts))
	for _, row := range dbProducts {
		product, err := mapDBProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapDBProductToDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}

	arg := db.UpsertProductParams{
		ID:            product.ID,
		Name:          product.Name,
		Category:      product.Category,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Available:     product.Available,
	}

	if err := queries(ctx, r.q).UpsertProduct(ctx, arg); err != nil {
		return fmt.Errorf("q.UpsertProduct: %w", err)
	}

	return nil
}

func mapDBProductToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:        row.ID,
		Name:      row.Name,
		Category:  row.Category,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Available: row.Available,
	}, nil
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
