package users

import (
	"context"

	"github.com/poojan019/user-management/internal/application/ports"
	"github.com/poojan019/user-management/internal/domain"
	domerrors "github.com/poojan019/user-management/internal/domain/errors"
)

// UpdateUserInput carries a partial record: nil fields are left untouched.
type UpdateUserInput struct {
	ID        string
	Username  *string
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	ProjectID *string
}

// Fields returns the supplied subset keyed by stored field names.
func (in UpdateUserInput) Fields() map[string]any {
	fields := make(map[string]any)
	if in.Username != nil {
		fields[domain.FieldUsername] = *in.Username
	}
	if in.Email != nil {
		fields[domain.FieldEmail] = *in.Email
	}
	if in.Password != nil {
		fields[domain.FieldPassword] = *in.Password
	}
	if in.FirstName != nil {
		fields[domain.FieldFirstName] = *in.FirstName
	}
	if in.LastName != nil {
		fields[domain.FieldLastName] = *in.LastName
	}
	if in.ProjectID != nil {
		fields[domain.FieldProjectID] = *in.ProjectID
	}
	return fields
}

type UpdateUser struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUpdateUser(users ports.UserRepository, hasher ports.PasswordHasher) *UpdateUser {
	return &UpdateUser{users: users, hasher: hasher}
}

// Execute merge-updates the supplied fields and returns the resulting
// record. A supplied password is rehashed before storage; plaintext never
// reaches the collection.
func (uc *UpdateUser) Execute(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	existing, err := uc.users.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domerrors.ErrUserNotFound
	}
	fields := input.Fields()
	if len(fields) == 0 {
		return nil, domerrors.ErrEmptyUpdate
	}
	if pw, ok := fields[domain.FieldPassword]; ok {
		hash, err := uc.hasher.Hash(pw.(string))
		if err != nil {
			return nil, err
		}
		fields[domain.FieldPassword] = hash
	}
	return uc.users.Update(ctx, input.ID, fields)
}
