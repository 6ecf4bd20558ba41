package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wexa-dev/studio-api/internal/auth"
	"github.com/wexa-dev/studio-api/internal/config"
	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/repository"
	apperrors "github.com/wexa-dev/studio-api/pkg/util"
)

// AuthService coordinates registration, login, and user administration.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account and logs it in. Duplicate emails conflict.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	if role == "" {
		role = domain.RoleClient
	}
	if !role.Valid() {
		return nil, "", time.Time{}, apperrors.NewValidationError("unknown role", nil)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates credentials and issues a token. Unknown emails and
// wrong passwords produce the same error so the endpoint does not reveal
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ListUsers returns every account. The route is admin-guarded.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UserUpdateInput carries a partial user update; nil fields are left as-is.
type UserUpdateInput struct {
	Name   *string
	Email  *string
	Role   *domain.Role
	Avatar *string
}

// UpdateUser merges the input into the user record. Users may edit
// themselves; admins may edit anyone; only admins may change roles.
func (s *AuthService) UpdateUser(ctx context.Context, requester *domain.User, id string, input UserUpdateInput) (*domain.User, error) {
	if !requester.IsAdmin() && requester.ID != id {
		return nil, apperrors.NewForbidden("not allowed to update this user")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			if _, err := s.users.GetByEmail(ctx, email); err == nil {
				return nil, apperrors.NewConflict("email already registered", nil)
			} else if !errors.Is(err, pgx.ErrNoRows) {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.Role != nil && *input.Role != user.Role {
		if !requester.IsAdmin() {
			return nil, apperrors.NewForbidden("only admins may change roles")
		}
		if !input.Role.Valid() {
			return nil, apperrors.NewValidationError("unknown role", nil)
		}
		user.Role = *input.Role
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

// DeleteUser removes an account. The route is admin-guarded.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return notFoundOr(err, "user")
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
