package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ordering/internal/db"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/port"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

type txKey struct{}

type transactor struct {
	pool *pgxpool.Pool
}

func NewTransactor(pool *pgxpool.Pool) port.Transactor {
	return &transactor{pool: pool}
}

func (t *transactor) InTx(ctx context.Context, level port.IsolationLevel, fn func(ctx context.Context) error) error {
	_, err := withTx(ctx, t.pool, level, func(txCtx context.Context) (struct{}, error) {
		return struct{}{}, fn(txCtx)
	})
	return err
}

// withTx executes fn within a new transaction stored in the context passed to fn,
// or within the transaction already carried by ctx
func withTx[T any](ctx context.Context, pool *pgxpool.Pool, level port.IsolationLevel, fn func(ctx context.Context) (T, error)) (_ T, txErr error) {
	var zero T

	// Already in a transaction, just join it
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	if pool == nil {
		return zero, errors.New("pool is nil")
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: toIsoLevel(level)})
	if err != nil {
		return zero, fmt.Errorf("pool.BeginTx: %w", err)
	}

	// Ensure proper rollback handling
	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	txCtx := context.WithValue(ctx, txKey{}, tx)

	result, err := fn(txCtx)
	if err != nil {
		return zero, asConflict(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, asConflict(fmt.Errorf("tx.Commit: %w", err))
	}

	return result, nil
}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// queries binds q to the transaction carried by ctx, if any
func queries(ctx context.Context, q *db.Queries) *db.Queries {
	if tx := txFromContext(ctx); tx != nil {
		return q.WithTx(tx)
	}
	return q
}

func toIsoLevel(level port.IsolationLevel) pgx.TxIsoLevel {
	switch level {
	case port.IsolationSerializable:
		return pgx.Serializable
	default:
		return ""
	}
}

// asConflict marks serialization failures and deadlocks as retryable conflicts
func asConflict(err error) error {
	if isPgError(err, codeSerializationFailure) || isPgError(err, codeDeadlockDetected) {
		if errors.Is(err, domain.ErrTransactionConflict) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrTransactionConflict, err)
	}
	return err
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
