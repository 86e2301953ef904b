package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
	"github.com/shopspring/decimal"
)

// Dependencies are the collaborators of OrderingService. All of them are required.
type Dependencies struct {
	Identity     port.Identity
	Clients      port.ClientRepository
	Reservations port.ReservationRepository
	Products     port.ProductRepository
	Purchases    port.PurchaseRepository
	Payments     port.PaymentRepository
	Suggestions  port.SuggestionService
	Discounts    port.DiscountFactory
	Transactor   port.Transactor
}

func (d Dependencies) validate() error {
	switch {
	case d.Identity == nil:
		return errors.New("identity is nil")
	case d.Clients == nil:
		return errors.New("clients is nil")
	case d.Reservations == nil:
		return errors.New("reservations is nil")
	case d.Products == nil:
		return errors.New("products is nil")
	case d.Purchases == nil:
		return errors.New("purchases is nil")
	case d.Payments == nil:
		return errors.New("payments is nil")
	case d.Suggestions == nil:
		return errors.New("suggestions is nil")
	case d.Discounts == nil:
		return errors.New("discounts is nil")
	case d.Transactor == nil:
		return errors.New("transactor is nil")
	}
	return nil
}

// OrderDetails is supplied by the client on confirmation.
type OrderDetails struct {
	Note string
}

// OrderingService exposes the ordering use case in application terms:
// reservations and purchases are hidden behind the order id.
type OrderingService struct {
	deps   Dependencies
	delta  decimal.Decimal
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*OrderingService)

// WithOfferDelta sets the tolerance used by Confirm to compare offers.
func WithOfferDelta(delta decimal.Decimal) Option {
	return func(s *OrderingService) {
		s.delta = delta
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *OrderingService) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *OrderingService) {
		s.now = now
	}
}

func NewOrderingService(deps Dependencies, opts ...Option) (*OrderingService, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("deps.validate: %w", err)
	}

	s := &OrderingService{
		deps:   deps,
		delta:  domain.DefaultOfferDelta,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.delta.IsNegative() {
		return nil, fmt.Errorf("offer delta is negative: %s", s.delta)
	}

	return s, nil
}

// CreateOrder opens a reservation owned by the acting client.
func (s *OrderingService) CreateOrder(ctx context.Context) (uuid.UUID, error) {
	var orderID uuid.UUID

	err := s.deps.Transactor.InTx(ctx, port.IsolationDefault, func(ctx context.Context) error {
		client, err := s.loadClient(ctx)
		if err != nil {
			return err
		}

		reservation := domain.NewReservation(client)

		if err := s.deps.Reservations.SaveReservation(ctx, reservation); err != nil {
			return fmt.Errorf("reservations.SaveReservation: %w", err)
		}

		orderID = reservation.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("transactor.InTx: %w", err)
	}

	s.logger.InfoContext(ctx, "order created", slog.String("order_id", orderID.String()))

	return orderID, nil
}

// AddProduct reserves quantity units of the product. An unavailable product is
// replaced with an equivalent suggested for the acting client, who may not be
// the reservation owner.
func (s *OrderingService) AddProduct(ctx context.Context, orderID, productID uuid.UUID, quantity int) error {
	err := s.deps.Transactor.InTx(ctx, port.IsolationDefault, func(ctx context.Context) error {
		reservation, err := s.deps.Reservations.GetReservation(ctx, orderID)
		if err != nil {
			return fmt.Errorf("reservations.GetReservation: %w", err)
		}

		product, err := s.deps.Products.GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("products.GetProduct: %w", err)
		}

		if !product.IsAvailable() {
			client, err := s.loadClient(ctx)
			if err != nil {
				return err
			}

			product, err = s.deps.Suggestions.SuggestEquivalent(ctx, product, client)
			if err != nil {
				return fmt.Errorf("suggestions.SuggestEquivalent: %w", err)
			}
		}

		if err := reservation.Add(product, quantity); err != nil {
			return fmt.Errorf("reservation.Add: %w", err)
		}

		if err := s.deps.Reservations.SaveReservation(ctx, reservation); err != nil {
			return fmt.Errorf("reservations.SaveReservation: %w", err)
		}

		if product.ID != productID {
			s.logger.InfoContext(ctx, "product substituted",
				slog.String("order_id", orderID.String()),
				slog.String("requested_product_id", productID.String()),
				slog.String("product_id", product.ID.String()))
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transactor.InTx: %w", err)
	}

	return nil
}

// CalculateOffer prices the order for the acting client. It can be called any
// number of times, the offer is not stored.
func (s *OrderingService) CalculateOffer(ctx context.Context, orderID uuid.UUID) (domain.Offer, error) {
	reservation, err := s.deps.Reservations.GetReservation(ctx, orderID)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("reservations.GetReservation: %w", err)
	}

	client, err := s.loadClient(ctx)
	if err != nil {
		return domain.Offer{}, err
	}

	return reservation.CalculateOffer(s.deps.Discounts.Create(client)), nil
}

// Confirm buys the order at the seen offer, provided a fresh offer for the acting
// client is still the same within the configured delta. Every write commits
// together under serializable isolation or not at all.
func (s *OrderingService) Confirm(ctx context.Context, orderID uuid.UUID, details OrderDetails, seenOffer domain.Offer) error {
	var payment domain.Payment

	err := s.deps.Transactor.InTx(ctx, port.IsolationSerializable, func(ctx context.Context) error {
		reservation, err := s.deps.Reservations.GetReservation(ctx, orderID)
		if err != nil {
			return fmt.Errorf("reservations.GetReservation: %w", err)
		}
		if reservation.IsClosed() {
			return domain.NewDomainOperationError(reservation.ID, "reservation is already closed", domain.ErrAlreadyClosed)
		}

		// the acting client, not the reservation owner
		client, err := s.loadClient(ctx)
		if err != nil {
			return err
		}

		newOffer := reservation.CalculateOffer(s.deps.Discounts.Create(client))
		if !newOffer.SameAs(seenOffer, s.delta) {
			return &domain.OfferChangedError{
				ReservationID: reservation.ID,
				Seen:          seenOffer,
				Current:       newOffer,
			}
		}

		// the seen offer is the binding price, newOffer only proves it is current
		purchase := domain.NewPurchase(reservation.ID, client, seenOffer)

		// saved before charging: payment listeners may load it
		if err := s.deps.Purchases.SavePurchase(ctx, purchase); err != nil {
			return fmt.Errorf("purchases.SavePurchase: %w", err)
		}

		if !client.CanAfford(purchase.TotalCost()) {
			return domain.NewDomainOperationError(client.ID, "client has insufficient money", domain.ErrInsufficientFunds)
		}

		// the client does not manage the payment lifecycle, it is persisted here
		payment, err = client.Charge(purchase.TotalCost())
		if err != nil {
			return fmt.Errorf("client.Charge: %w", err)
		}
		if err := s.deps.Payments.InsertPayment(ctx, payment); err != nil {
			return fmt.Errorf("payments.InsertPayment: %w", err)
		}

		if err := purchase.Confirm(s.now()); err != nil {
			return fmt.Errorf("purchase.Confirm: %w", err)
		}
		if err := reservation.Close(); err != nil {
			return fmt.Errorf("reservation.Close: %w", err)
		}

		if err := s.deps.Purchases.SavePurchase(ctx, purchase); err != nil {
			return fmt.Errorf("purchases.SavePurchase: %w", err)
		}
		if err := s.deps.Reservations.SaveReservation(ctx, reservation); err != nil {
			return fmt.Errorf("reservations.SaveReservation: %w", err)
		}
		if err := s.deps.Clients.SaveClient(ctx, client); err != nil {
			return fmt.Errorf("clients.SaveClient: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "order not confirmed",
			slog.String("order_id", orderID.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("transactor.InTx: %w", err)
	}

	s.logger.InfoContext(ctx, "order confirmed",
		slog.String("order_id", orderID.String()),
		slog.String("client_id", payment.ClientID.String()),
		slog.String("payment_id", payment.ID.String()),
		slog.String("amount", payment.Amount.String()),
		slog.String("note", details.Note))

	return nil
}

func (s *OrderingService) loadClient(ctx context.Context) (domain.Client, error) {
	userID, err := s.deps.Identity.CurrentUserID(ctx)
	if err != nil {
		return domain.Client{}, fmt.Errorf("identity.CurrentUserID: %w", err)
	}

	client, err := s.deps.Clients.GetClient(ctx, userID)
	if err != nil {
		return domain.Client{}, fmt.Errorf("clients.GetClient: %w", err)
	}

	return client, nil
}
