package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

type Reservation struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Currency currency.Unit
	Status   ReservationStatus
	Items    []ReservationItem

	CreatedAt time.Time
}

// MaxQuantity is the largest quantity a single line can hold.
const MaxQuantity = math.MaxInt32

type ReservationItem struct {
	Product  ProductRef
	Quantity int
}

// NewReservation opens an empty reservation owned by the client, priced in the client's currency.
func NewReservation(client Client) Reservation {
	return Reservation{
		ID:       uuid.New(),
		ClientID: client.ID,
		Currency: client.Balance.Currency,
		Status:   ReservationStatusOpen,
	}
}

// Add reserves quantity more units of the product, merging with an existing line.
func (r *Reservation) Add(product Product, quantity int) error {
	if r.IsClosed() {
		return ErrAlreadyClosed
	}

	if quantity <= 0 || quantity > MaxQuantity {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	if product.Price.Currency.String() != r.Currency.String() {
		return fmt.Errorf("%w: product priced in %s, reservation in %s",
			ErrCurrencyMismatch, product.Price.Currency, r.Currency)
	}

	for i := range r.Items {
		if r.Items[i].Product.ID == product.ID {
			if r.Items[i].Quantity > MaxQuantity-quantity {
				return fmt.Errorf("%w: adding %d to %d exceeds %d",
					ErrInvalidQuantity, quantity, r.Items[i].Quantity, MaxQuantity)
			}
			r.Items[i].Quantity += quantity
			return nil
		}
	}

	r.Items = append(r.Items, ReservationItem{
		Product:  product.Ref(),
		Quantity: quantity,
	})

	return nil
}

// Quantity returns the reserved quantity of the product, zero if it is not reserved.
func (r Reservation) Quantity(productID uuid.UUID) int {
	item, ok := lo.Find(r.Items, func(item ReservationItem) bool {
		return item.Product.ID == productID
	})
	if !ok {
		return 0
	}
	return item.Quantity
}

// CalculateOffer prices the current lines with the policy. A nil policy grants no discount.
func (r Reservation) CalculateOffer(policy DiscountPolicy) Offer {
	total := Zero(r.Currency)

	items := lo.Map(r.Items, func(item ReservationItem, _ int) OfferItem {
		regular := item.Product.Price.Mul(item.Quantity)

		discount := Zero(r.Currency)
		if policy != nil {
			discount = clampDiscount(policy(item.Product, item.Quantity, regular), regular)
		}

		lineTotal := Money{Amount: regular.Amount.Sub(discount.Amount), Currency: r.Currency}
		total.Amount = total.Amount.Add(lineTotal.Amount)

		return OfferItem{
			Product:     item.Product,
			Quantity:    item.Quantity,
			RegularCost: regular,
			Discount:    discount,
			TotalCost:   lineTotal,
		}
	})

	return Offer{
		Items:     items,
		TotalCost: total,
	}
}

func (r *Reservation) Close() error {
	if r.IsClosed() {
		return ErrAlreadyClosed
	}

	r.Status = ReservationStatusClosed
	return nil
}

func (r Reservation) IsClosed() bool {
	return r.Status == ReservationStatusClosed
}

// discount is kept within [0, regular] and in the regular cost currency
func clampDiscount(discount, regular Money) Money {
	if !discount.SameCurrency(regular) || discount.IsNegative() {
		return Zero(regular.Currency)
	}
	if discount.Amount.GreaterThan(regular.Amount) {
		return regular
	}
	return discount
}
