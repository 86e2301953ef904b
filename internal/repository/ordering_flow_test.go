package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/ordering/internal/discount"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/identity"
	"github.com/nikolayk812/ordering/internal/service"
	"github.com/nikolayk812/ordering/internal/suggestion"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/currency"
)

func (suite *repositorySuite) newOrderingService(rate string) *service.OrderingService {
	svc, err := service.NewOrderingService(service.Dependencies{
		Identity:     identity.NewContextIdentity(),
		Clients:      suite.clients,
		Reservations: suite.reservations,
		Products:     suite.products,
		Purchases:    suite.purchases,
		Payments:     suite.payments,
		Suggestions:  suggestion.NewService(suite.products),
		Discounts:    discount.NewFactory(decimal.RequireFromString(rate)),
		Transactor:   suite.transactor,
	}, service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	suite.Require().NoError(err)

	return svc
}

func (suite *repositorySuite) TestOrderingFlow() {
	defer suite.deleteAll()

	t := suite.T()
	svc := suite.newOrderingService("0.1")

	client := randomClient(currency.EUR)
	client.Balance.Amount = decimal.NewFromInt(1000)
	require.NoError(t, suite.clients.SaveClient(t.Context(), client))

	product := randomProduct(currency.EUR)
	product.Price.Amount = decimal.NewFromInt(200)
	suite.saveProducts(product)

	ctx := identity.WithUser(t.Context(), client.ID)

	orderID, err := svc.CreateOrder(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddProduct(ctx, orderID, product.ID, 2))

	offer, err := svc.CalculateOffer(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(360).Equal(offer.TotalCost.Amount))

	require.NoError(t, svc.Confirm(ctx, orderID, service.OrderDetails{Note: gofakeit.Phrase()}, offer))

	reservation, err := suite.reservations.GetReservation(t.Context(), orderID)
	require.NoError(t, err)
	assert.True(t, reservation.IsClosed())

	purchase, err := suite.purchases.GetPurchaseByReservation(t.Context(), orderID)
	require.NoError(t, err)
	assert.True(t, purchase.IsConfirmed())
	assertEqual(t, offer.TotalCost, purchase.TotalCost())

	actualClient, err := suite.clients.GetClient(t.Context(), client.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(640).Equal(actualClient.Balance.Amount))

	payments, err := suite.payments.ListPayments(t.Context(), client.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assertEqual(t, offer.TotalCost, payments[0].Amount)

	// confirming again fails and changes nothing
	err = svc.Confirm(ctx, orderID, service.OrderDetails{}, offer)
	require.ErrorIs(t, err, domain.ErrAlreadyClosed)

	payments, err = suite.payments.ListPayments(t.Context(), client.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func (suite *repositorySuite) TestConfirmRollsBackOnInsufficientFunds() {
	defer suite.deleteAll()

	t := suite.T()
	svc := suite.newOrderingService("0")

	client := randomClient(currency.EUR)
	client.Balance.Amount = decimal.NewFromInt(50)
	require.NoError(t, suite.clients.SaveClient(t.Context(), client))

	product := randomProduct(currency.EUR)
	product.Price.Amount = decimal.NewFromInt(40)
	suite.saveProducts(product)

	ctx := identity.WithUser(t.Context(), client.ID)

	orderID, err := svc.CreateOrder(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddProduct(ctx, orderID, product.ID, 2))

	offer, err := svc.CalculateOffer(ctx, orderID)
	require.NoError(t, err)

	err = svc.Confirm(ctx, orderID, service.OrderDetails{}, offer)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// the pending purchase written before the check is rolled back
	_, err = suite.purchases.GetPurchaseByReservation(t.Context(), orderID)
	require.ErrorIs(t, err, domain.ErrPurchaseNotFound)

	reservation, err := suite.reservations.GetReservation(t.Context(), orderID)
	require.NoError(t, err)
	assert.False(t, reservation.IsClosed())

	actualClient, err := suite.clients.GetClient(t.Context(), client.ID)
	require.NoError(t, err)
	assertEqual(t, client.Balance, actualClient.Balance)
}

func (suite *repositorySuite) TestConfirmStaleOfferAfterPriceChange() {
	defer suite.deleteAll()

	t := suite.T()
	svc := suite.newOrderingService("0")

	client := randomClient(currency.EUR)
	client.Balance.Amount = decimal.NewFromInt(1000)
	require.NoError(t, suite.clients.SaveClient(t.Context(), client))

	product := randomProduct(currency.EUR)
	product.Price.Amount = decimal.NewFromInt(100)
	suite.saveProducts(product)

	ctx := identity.WithUser(t.Context(), client.ID)

	orderID, err := svc.CreateOrder(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddProduct(ctx, orderID, product.ID, 1))

	seen, err := svc.CalculateOffer(ctx, orderID)
	require.NoError(t, err)

	product.Price.Amount = decimal.NewFromInt(106)
	suite.saveProducts(product)

	err = svc.Confirm(ctx, orderID, service.OrderDetails{}, seen)

	var changed *domain.OfferChangedError
	require.True(t, errors.As(err, &changed))
	assert.True(t, decimal.NewFromInt(106).Equal(changed.Current.TotalCost.Amount))

	// re-confirming with the fresh offer succeeds
	require.NoError(t, svc.Confirm(ctx, orderID, service.OrderDetails{}, changed.Current))
}

func (suite *repositorySuite) TestConcurrentConfirm() {
	defer suite.deleteAll()

	t := suite.T()
	svc := suite.newOrderingService("0")

	client := randomClient(currency.EUR)
	client.Balance.Amount = decimal.NewFromInt(1000)
	require.NoError(t, suite.clients.SaveClient(t.Context(), client))

	product := randomProduct(currency.EUR)
	product.Price.Amount = decimal.NewFromInt(100)
	suite.saveProducts(product)

	ctx := identity.WithUser(t.Context(), client.ID)

	orderID, err := svc.CreateOrder(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddProduct(ctx, orderID, product.ID, 1))

	offer, err := svc.CalculateOffer(ctx, orderID)
	require.NoError(t, err)

	const attempts = 4

	var (
		succeeded atomic.Int32
		rejected  atomic.Int32
	)

	var g errgroup.Group
	for range attempts {
		g.Go(func() error {
			err := svc.Confirm(ctx, orderID, service.OrderDetails{}, offer)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrAlreadyClosed), errors.Is(err, domain.ErrTransactionConflict):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), rejected.Load())

	payments, err := suite.payments.ListPayments(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	actualClient, err := suite.clients.GetClient(context.Background(), client.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(900).Equal(actualClient.Balance.Amount))
}
