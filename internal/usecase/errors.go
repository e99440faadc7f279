package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/hitting-tracker/internal/platform/resilience"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// repoError wraps a repository failure, surfacing an open circuit as
// ErrDependencyUnavailable.
func repoError(op string, err error) error {
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
