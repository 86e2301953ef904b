package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/ordering/internal/domain"
)

type ClientRepository interface {
	GetClient(ctx context.Context, clientID uuid.UUID) (domain.Client, error)
	SaveClient(ctx context.Context, client domain.Client) error
}

type ReservationRepository interface {
	GetReservation(ctx context.Context, reservationID uuid.UUID) (domain.Reservation, error)
	SaveReservation(ctx context.Context, reservation domain.Reservation) error
}

type ProductRepository interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	SaveProduct(ctx context.Context, product domain.Product) error
}

type PurchaseRepository interface {
	GetPurchase(ctx context.Context, purchaseID uuid.UUID) (domain.Purchase, error)
	GetPurchaseByReservation(ctx context.Context, reservationID uuid.UUID) (domain.Purchase, error)
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
}

type PaymentRepository interface {
	InsertPayment(ctx context.Context, payment domain.Payment) error
	ListPayments(ctx context.Context, clientID uuid.UUID) ([]domain.Payment, error)
}
