package outing

import "context"

// Repository describes outing persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Outing, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Outing, error)
	GetByID(ctx context.Context, outingID string) (Outing, bool, error)
	Create(ctx context.Context, item Outing) error
	Update(ctx context.Context, item Outing) error
	Delete(ctx context.Context, outingID string) error
	DeleteByPlayer(ctx context.Context, playerID string) error
}
