package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultOfferDelta is the tolerance used when comparing a seen offer to a fresh one.
var DefaultOfferDelta = decimal.NewFromInt(5)

// Offer is a priced snapshot of a reservation. It is handed to the caller and
// sent back unchanged on confirmation, it is never stored on its own.
type Offer struct {
	Items     []OfferItem `json:"items"`
	TotalCost Money       `json:"total_cost"`
}

type OfferItem struct {
	Product     ProductRef `json:"product"`
	Quantity    int        `json:"quantity"`
	RegularCost Money      `json:"regular_cost"`
	Discount    Money      `json:"discount"`
	TotalCost   Money      `json:"total_cost"`
}

// SameAs reports whether other describes the same lines and every total is within delta.
// Lines are matched by product, their order does not matter.
func (o Offer) SameAs(other Offer, delta decimal.Decimal) bool {
	if len(o.Items) != len(other.Items) {
		return false
	}

	if !o.TotalCost.WithinDelta(other.TotalCost, delta) {
		return false
	}

	for _, item := range o.Items {
		otherItem, ok := lo.Find(other.Items, func(candidate OfferItem) bool {
			return candidate.Product.ID == item.Product.ID
		})
		if !ok || !item.SameAs(otherItem, delta) {
			return false
		}
	}

	return true
}

func (i OfferItem) SameAs(other OfferItem, delta decimal.Decimal) bool {
	if i.Product.ID != other.Product.ID || i.Quantity != other.Quantity {
		return false
	}

	return i.TotalCost.WithinDelta(other.TotalCost, delta)
}
