package service_test

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
	"github.com/samber/lo"
)

// memStore keeps every aggregate in memory. The transactor snapshots it on
// InTx and restores the snapshot when fn fails.
type memStore struct {
	mu sync.Mutex

	clients      map[uuid.UUID]domain.Client
	reservations map[uuid.UUID]domain.Reservation
	products     map[uuid.UUID]domain.Product
	purchases    map[uuid.UUID]domain.Purchase
	payments     []domain.Payment

	writes    int
	levels    []port.IsolationLevel
	commitErr error
}

func newMemStore() *memStore {
	return &memStore{
		clients:      make(map[uuid.UUID]domain.Client),
		reservations: make(map[uuid.UUID]domain.Reservation),
		products:     make(map[uuid.UUID]domain.Product),
		purchases:    make(map[uuid.UUID]domain.Purchase),
	}
}

type memSnapshot struct {
	clients      map[uuid.UUID]domain.Client
	reservations map[uuid.UUID]domain.Reservation
	products     map[uuid.UUID]domain.Product
	purchases    map[uuid.UUID]domain.Purchase
	payments     []domain.Payment
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := make(map[uuid.UUID]domain.Reservation, len(s.reservations))
	for id, r := range s.reservations {
		reservations[id] = cloneReservation(r)
	}

	return memSnapshot{
		clients:      maps.Clone(s.clients),
		reservations: reservations,
		products:     maps.Clone(s.products),
		purchases:    maps.Clone(s.purchases),
		payments:     slices.Clone(s.payments),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = snap.clients
	s.reservations = snap.reservations
	s.products = snap.products
	s.purchases = snap.purchases
	s.payments = snap.payments
}

func (s *memStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func cloneReservation(r domain.Reservation) domain.Reservation {
	r.Items = slices.Clone(r.Items)
	return r
}

type txKey struct{}

type memTransactor struct {
	store *memStore
}

func (t memTransactor) InTx(ctx context.Context, level port.IsolationLevel, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.store.mu.Lock()
	t.store.levels = append(t.store.levels, level)
	commitErr := t.store.commitErr
	t.store.mu.Unlock()

	snap := t.store.snapshot()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.store.restore(snap)
		return err
	}

	if commitErr != nil {
		t.store.restore(snap)
		return commitErr
	}

	return nil
}

type memClients struct{ store *memStore }

func (r memClients) GetClient(_ context.Context, clientID uuid.UUID) (domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.clients[clientID]
	if !ok {
		return domain.Client{}, fmt.Errorf("client[%s]: %w", clientID, domain.ErrClientNotFound)
	}
	return c, nil
}

func (r memClients) SaveClient(_ context.Context, client domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.writes++
	r.store.clients[client.ID] = client
	return nil
}

type memReservations struct{ store *memStore }

func (r memReservations) GetReservation(_ context.Context, reservationID uuid.UUID) (domain.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	res, ok := r.store.reservations[reservationID]
	if !ok {
		return domain.Reservation{}, fmt.Errorf("reservation[%s]: %w", reservationID, domain.ErrReservationNotFound)
	}
	return cloneReservation(res), nil
}

func (r memReservations) SaveReservation(_ context.Context, reservation domain.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.writes++
	r.store.reservations[reservation.ID] = cloneReservation(reservation)
	return nil
}

type memProducts struct{ store *memStore }

func (r memProducts) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, domain.ErrProductNotFound)
	}
	return p, nil
}

func (r memProducts) SearchProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return lo.Filter(lo.Values(r.store.products), func(p domain.Product, _ int) bool {
		if lo.Contains(filter.ExcludeIDs, p.ID) {
			return false
		}
		if len(filter.Categories) > 0 && !lo.Contains(filter.Categories, p.Category) {
			return false
		}
		if filter.AvailableOnly && !p.Available {
			return false
		}
		if filter.MaxPrice != nil && p.Price.Amount.GreaterThan(*filter.MaxPrice) {
			return false
		}
		return true
	}), nil
}

func (r memProducts) SaveProduct(_ context.Context, product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.products[product.ID] = product
	return nil
}

type memPurchases struct{ store *memStore }

func (r memPurchases) GetPurchase(_ context.Context, purchaseID uuid.UUID) (domain.Purchase, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.purchases[purchaseID]
	if !ok {
		return domain.Purchase{}, domain.ErrPurchaseNotFound
	}
	return p, nil
}

func (r memPurchases) GetPurchaseByReservation(_ context.Context, reservationID uuid.UUID) (domain.Purchase, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.purchases {
		if p.ReservationID == reservationID {
			return p, nil
		}
	}
	return domain.Purchase{}, domain.ErrPurchaseNotFound
}

func (r memPurchases) SavePurchase(_ context.Context, purchase domain.Purchase) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.writes++
	r.store.purchases[purchase.ID] = purchase
	return nil
}

type memPayments struct{ store *memStore }

func (r memPayments) InsertPayment(_ context.Context, payment domain.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.writes++
	r.store.payments = append(r.store.payments, payment)
	return nil
}

func (r memPayments) ListPayments(_ context.Context, clientID uuid.UUID) ([]domain.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return lo.Filter(r.store.payments, func(p domain.Payment, _ int) bool {
		return p.ClientID == clientID
	}), nil
}
