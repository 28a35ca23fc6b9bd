package memory

import (
	"context"
	"strings"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	t *table[entities.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{t: newTable[entities.User]()}
}

func (r *UserRepository) Create(_ context.Context, user *entities.User) error {
	if _, err := r.FindByEmail(context.Background(), user.Email); err == nil {
		return domain.ErrEmailTaken
	}
	r.t.put(user.ID, *user)
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.t.list() {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
