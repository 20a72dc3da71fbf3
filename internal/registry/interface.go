package registry

import (
	"context"
	"uuid62/pkg/domain"

	"github.com/google/uuid"
)

// Registry manages the set of registered identifiers. Errors carry serrors
// kinds so the API layer can map them to responses.
//
//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
type Registry interface {
	Add(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	AddRandom(ctx context.Context) (*domain.Entry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	List(ctx context.Context, cursor string, limit uint) ([]domain.Entry, string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
