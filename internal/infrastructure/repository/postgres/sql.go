package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/hitting-tracker/internal/platform/resilience"
)

const (
	pqCodeUniqueViolation       = "23505"
	pqCodeForeignKeyViolation   = "23503"
	pqCodeInvalidSQLStatement   = "26000"
	pqCodeProtocolViolation     = "08P01"
	bindMismatchMessageFragment = "bind message supplies"
)

var (
	// ErrDuplicate marks an insert that collided with an existing key.
	ErrDuplicate = errors.New("duplicate record")
	// ErrMissingParent marks a write that referenced a row that does not exist.
	ErrMissingParent = errors.New("referenced record does not exist")
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// isBindParameterMismatch matches the error a transaction-pooling proxy
// returns when it hands a statement to a backend that prepared another one.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	if pqCode(err) == pqCodeProtocolViolation {
		return true
	}
	return strings.Contains(err.Error(), bindMismatchMessageFragment)
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	if pqCode(err) == pqCodeInvalidSQLStatement {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "unnamed prepared statement does not exist") || strings.Contains(msg, "("+pqCodeInvalidSQLStatement+")")
}

// classify maps constraint violations onto package sentinels.
func classify(err error) error {
	switch pqCode(err) {
	case pqCodeUniqueViolation:
		return errors.Mark(err, ErrDuplicate)
	case pqCodeForeignKeyViolation:
		return errors.Mark(err, ErrMissingParent)
	default:
		return err
	}
}

// executor runs statements through the circuit breaker and retries once when
// a pooled connection lost its prepared statement. Constraint violations are
// caller errors and do not count against the breaker.
type executor struct {
	db      *sqlx.DB
	breaker *resilience.Breaker
}

func (e executor) run(ctx context.Context, fn func(ctx context.Context) error) error {
	var constraintErr error
	err := e.breaker.Execute(ctx, func(ctx context.Context) error {
		err := fn(ctx)
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			err = fn(ctx)
		}
		if strings.HasPrefix(pqCode(err), "23") {
			constraintErr = classify(err)
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	return constraintErr
}
