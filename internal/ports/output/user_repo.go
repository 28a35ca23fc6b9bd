package output

import (
	"context"
	"time"

	"jadwal/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenClaims is what a session token carries.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(user *entities.User) (string, time.Time, error)
	Parse(token string) (*TokenClaims, error)
}
