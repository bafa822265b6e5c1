package users

import (
	"context"

	"github.com/poojan019/user-management/internal/application/ports"
	"github.com/poojan019/user-management/internal/domain"
)

type ListUsers struct {
	users ports.UserRepository
}

func NewListUsers(users ports.UserRepository) *ListUsers {
	return &ListUsers{users: users}
}

// Execute streams every document in the collection. Unbounded: the
// endpoint has no pagination.
func (uc *ListUsers) Execute(ctx context.Context) ([]domain.User, error) {
	return uc.users.List(ctx)
}
