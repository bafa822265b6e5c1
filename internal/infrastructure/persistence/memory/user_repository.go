package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/poojan019/user-management/internal/domain"
)

// UserRepository is an in-memory ports.UserRepository for tests and
// credential-less local runs. Ids are random UUIDs.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Add(ctx context.Context, user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.NewString()
	r.users[id] = *user
	return id, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[id]
	for name, value := range fields {
		s, _ := value.(string)
		switch name {
		case domain.FieldUsername:
			u.Username = s
		case domain.FieldEmail:
			u.Email = s
		case domain.FieldPassword:
			u.PasswordHash = s
		case domain.FieldFirstName:
			u.FirstName = s
		case domain.FieldLastName:
			u.LastName = s
		case domain.FieldProjectID:
			u.ProjectID = s
		}
	}
	r.users[id] = u
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *UserRepository) Ping(ctx context.Context) error { return nil }
