package firestore

import (
	"context"

	cloudfirestore "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/poojan019/user-management/internal/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository over a Firestore client.
// The store assigns document ids on Add; last write wins per document.
type UserRepository struct {
	client *cloudfirestore.Client
}

func NewUserRepository(client *cloudfirestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) Add(ctx context.Context, user *domain.User) (string, error) {
	ref, _, err := r.client.Collection(usersCollection).Add(ctx, user)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	users := make([]domain.User, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var u domain.User
		if err := snap.DataTo(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	var u domain.User
	if err := snap.DataTo(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	ref := r.client.Collection(usersCollection).Doc(id)
	if _, err := ref.Set(ctx, fields, cloudfirestore.MergeAll); err != nil {
		return nil, err
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := snap.DataTo(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(usersCollection).Doc(id).Delete(ctx)
	return err
}

// Ping issues a single-document read to verify the store is reachable.
func (r *UserRepository) Ping(ctx context.Context) error {
	iter := r.client.Collection(usersCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}
