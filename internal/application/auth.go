package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/input"
	"jadwal/internal/ports/output"
)

var _ input.AuthUseCase = (*AuthService)(nil)

const minPasswordLength = 6

type AuthService struct {
	userRepo output.UserRepository
	hasher   output.PasswordHasher
	tokens   output.TokenIssuer
}

func NewAuthService(userRepo output.UserRepository, hasher output.PasswordHasher, tokens output.TokenIssuer) *AuthService {
	return &AuthService{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// SignUp registers a user. Role defaults to mahasiswa. Admin accounts come
// from the demo seed only and are refused here with domain.ErrForbidden.
func (s *AuthService) SignUp(ctx context.Context, in input.SignUpInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, fmt.Errorf("%w: email", domain.ErrMissingRequiredField)
	}
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password", domain.ErrMissingRequiredField)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	if role == domain.RoleAdmin {
		return nil, fmt.Errorf("%w: self sign-up as %s", domain.ErrForbidden, role)
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*input.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &input.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) Authenticate(_ context.Context, token string) (*output.TokenClaims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return claims, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
