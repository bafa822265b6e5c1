package users

import (
	"context"

	"github.com/poojan019/user-management/internal/application/ports"
	domerrors "github.com/poojan019/user-management/internal/domain/errors"
)

type DeleteUser struct {
	users ports.UserRepository
}

func NewDeleteUser(users ports.UserRepository) *DeleteUser {
	return &DeleteUser{users: users}
}

// Execute permanently removes the document. No soft delete, no audit
// trail.
func (uc *DeleteUser) Execute(ctx context.Context, id string) error {
	existing, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domerrors.ErrUserNotFound
	}
	return uc.users.Delete(ctx, id)
}
