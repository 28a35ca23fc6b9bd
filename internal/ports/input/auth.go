package input

import (
	"context"
	"time"

	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type Session struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      *entities.User `json:"user"`
}

type AuthUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (*entities.User, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Authenticate(ctx context.Context, token string) (*output.TokenClaims, error)
	Me(ctx context.Context, userID string) (*entities.User, error)
}
