package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/pawfinder/PF-SchedulingService/pkg/dbmetrics"
)

// pgSerializationFailure is the PostgreSQL error code raised when a
// serializable transaction loses a conflict and must be retried.
const pgSerializationFailure = "40001"

// maxSerializableRetries bounds the retry loop of DoSerializable.
const maxSerializableRetries = 3

// ErrTxFailed wraps begin/commit failures.
var ErrTxFailed = errors.New("txmanager: transaction failed")

// TransactionManager runs functions inside database transactions over a
// metrics-wrapped pool. The open transaction travels in the context, so
// repositories called from fn transparently join it.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a manager over the given wrapped pool.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn in a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly runs fn in a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable runs fn in a SERIALIZABLE transaction, retrying up to
// maxSerializableRetries times when PostgreSQL reports a serialization
// failure. fn must be side-effect free outside the transaction because
// it may run more than once.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !IsSerializationFailure(err) {
			return err
		}
	}
	return err
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTxFailed, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	// The driver error stays in the chain so a serialization failure on
	// COMMIT is still recognized by the retry loop.
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTxFailed, err)
	}
	return nil
}

// IsSerializationFailure reports whether err is (or wraps) a PostgreSQL
// serialization failure.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure
	}
	return false
}
