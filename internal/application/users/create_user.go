package users

import (
	"context"

	"github.com/poojan019/user-management/internal/application/ports"
	"github.com/poojan019/user-management/internal/domain"
)

type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	ProjectID string
}

type CreateUserResult struct {
	ID   string
	User *domain.User
}

type CreateUser struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewCreateUser(users ports.UserRepository, hasher ports.PasswordHasher) *CreateUser {
	return &CreateUser{users: users, hasher: hasher}
}

// Execute hashes the password and appends a new document to the
// collection. No duplicate detection on username or email.
func (uc *CreateUser) Execute(ctx context.Context, input CreateUserInput) (*CreateUserResult, error) {
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		ProjectID:    input.ProjectID,
	}
	id, err := uc.users.Add(ctx, user)
	if err != nil {
		return nil, err
	}
	return &CreateUserResult{ID: id, User: user}, nil
}
