package ports

import (
	"context"

	"github.com/poojan019/user-management/internal/domain"
)

// UserRepository defines persistence for the "users" collection. Document
// ids are assigned by the store on Add. Lookups return (nil, nil) when no
// document exists for the id.
type UserRepository interface {
	Add(ctx context.Context, user *domain.User) (string, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// Update merges the supplied fields into the document and returns the
	// resulting record. Fields not present in the map are left untouched.
	Update(ctx context.Context, id string, fields map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// Ping verifies the store is reachable (used by the health endpoint).
	Ping(ctx context.Context) error
}
