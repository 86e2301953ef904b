// Package discount provides DiscountPolicy factories.
package discount

import (
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
	"github.com/shopspring/decimal"
)

// Places is the number of decimal places discounts are rounded to.
const Places = 2

// None grants no discount.
func None(_ domain.ProductRef, _ int, regularCost domain.Money) domain.Money {
	return domain.Zero(regularCost.Currency)
}

// Percentage returns a policy granting rate (a fraction, 0.1 is ten percent) off every line.
func Percentage(rate decimal.Decimal) domain.DiscountPolicy {
	if !rate.IsPositive() {
		return None
	}

	return func(_ domain.ProductRef, _ int, regularCost domain.Money) domain.Money {
		discount := regularCost.MulRate(rate)
		discount.Amount = discount.Amount.Round(Places)
		return discount
	}
}

type percentageFactory struct {
	rate      decimal.Decimal
	overrides map[string]decimal.Decimal
}

type Option func(*percentageFactory)

// WithClientRate overrides the rate for a single client.
func WithClientRate(clientID string, rate decimal.Decimal) Option {
	return func(f *percentageFactory) {
		f.overrides[clientID] = rate
	}
}

// NewFactory builds policies for the acting client. Every client gets rate
// unless an override is registered for it.
func NewFactory(rate decimal.Decimal, opts ...Option) port.DiscountFactory {
	f := &percentageFactory{
		rate:      rate,
		overrides: make(map[string]decimal.Decimal),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *percentageFactory) Create(client domain.Client) domain.DiscountPolicy {
	if rate, ok := f.overrides[client.ID.String()]; ok {
		return Percentage(rate)
	}
	return Percentage(f.rate)
}
