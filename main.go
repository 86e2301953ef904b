package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ordering/internal/config"
	"github.com/nikolayk812/ordering/internal/discount"
	"github.com/nikolayk812/ordering/internal/identity"
	"github.com/nikolayk812/ordering/internal/logging"
	"github.com/nikolayk812/ordering/internal/repository"
	"github.com/nikolayk812/ordering/internal/service"
	"github.com/nikolayk812/ordering/internal/suggestion"
	transporthttp "github.com/nikolayk812/ordering/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(os.Stdout, cfg.Logging)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	poolCfg.MaxConns = cfg.Database.MaxConns

	pool, err := pgxpool.NewWithConfig(startupCtx, poolCfg)
	if err != nil {
		return fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}
	if err := repository.Migrate(startupCtx, pool); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}

	products := repository.NewProduct(pool)

	ordering, err := service.NewOrderingService(service.Dependencies{
		Identity:     identity.NewContextIdentity(),
		Clients:      repository.NewClient(pool),
		Reservations: repository.NewReservation(pool),
		Products:     products,
		Purchases:    repository.NewPurchase(pool),
		Payments:     repository.NewPayment(pool),
		Suggestions:  suggestion.NewService(products),
		Discounts:    discount.NewFactory(cfg.Ordering.DiscountRate),
		Transactor:   repository.NewTransactor(pool),
	},
		service.WithOfferDelta(cfg.Ordering.OfferDelta),
		service.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("service.NewOrderingService: %w", err)
	}

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:      transporthttp.NewRouter(ordering, logger),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", slog.String("addr", server.Addr))
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server.ListenAndServe: %w", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
