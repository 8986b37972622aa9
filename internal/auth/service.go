// stellar-backend | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/astralhq/stellar-backend/internal/config"
	"github.com/astralhq/stellar-backend/internal/core"
)

// Profile is the account view the auth flows operate on. It is deliberately
// storage-agnostic so the service depends on behavior, not on a repository.
type Profile struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	APIKey       string
	Balance      int64
	Active       bool
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProvider is the account store the auth service runs against.
type UserProvider interface {
	CreateUser(ctx context.Context, name, email, passwordHash, apiKey string) (*Profile, error)
	UserByID(ctx context.Context, id string) (*Profile, error)
	UserByEmail(ctx context.Context, email string) (*Profile, error)
	// SaveUser writes name, email, balance and active flag back in one shot.
	SaveUser(ctx context.Context, p *Profile) (*Profile, error)
	SaveUserPassword(ctx context.Context, id, passwordHash string) error
}

// Service implements registration, login and the account self-management
// operations, including the paid API-key activation.
type Service struct {
	users          UserProvider
	tokens         *TokenManager
	activationCost int64
}

func NewService(users UserProvider, tokens *TokenManager, billing config.BillingConfig) *Service {
	return &Service{
		users:          users,
		tokens:         tokens,
		activationCost: billing.ActivationCost,
	}
}

// Register creates an account with a fresh API key, zero balance and inactive
// status. No session token is issued; the account logs in separately.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile, err := s.users.CreateUser(ctx, req.Name, req.Email, hash, core.GenerateAPIKey())
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateAccountError("Such a user already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return profile, nil
}

// Login verifies the credentials and issues a session token. A lookup miss
// still burns a hash verification so response timing does not reveal whether
// the email exists.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Profile, string, error) {
	profile, err := s.users.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, "", core.InvalidCredentialsError()
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !core.VerifyPasswordTimingSafe(req.Password, &profile.PasswordHash) {
		return nil, "", core.InvalidCredentialsError()
	}

	token, err := s.tokens.Issue(profile.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return profile, token, nil
}

// Profile re-fetches the caller's account so the response reflects current
// stored state, not the snapshot the guard loaded.
func (s *Service) Profile(ctx context.Context, userID string) (*Profile, error) {
	profile, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.UnauthorizedError("")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return profile, nil
}

// UpdateProfile merges the provided fields over the stored account; fields
// left out of the request keep their current values.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*Profile, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}

	updated, err := s.users.SaveUser(ctx, profile)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateAccountError("Such a user already exists")
		}
		return nil, fmt.Errorf("save user: %w", err)
	}
	return updated, nil
}

// UpdatePassword checks the old password before storing the new hash, then
// issues a fresh token.
func (s *Service) UpdatePassword(ctx context.Context, userID string, req UpdatePasswordRequest) (*Profile, string, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if !core.VerifyPassword(req.OldPassword, profile.PasswordHash) {
		return nil, "", core.WrongPasswordError("Old password is incorrect")
	}

	hash, err := core.HashPassword(req.NewPassword)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.SaveUserPassword(ctx, userID, hash); err != nil {
		return nil, "", fmt.Errorf("save password: %w", err)
	}

	token, err := s.tokens.Issue(profile.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return profile, token, nil
}

// AddBalance applies a signed payment amount to the caller's balance.
// Negative amounts debit; no floor is enforced.
func (s *Service) AddBalance(ctx context.Context, userID string, amount int64) (*Profile, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Balance += amount

	updated, err := s.users.SaveUser(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return updated, nil
}

// Activate charges the activation cost and flips the account active, making
// its API key usable. Re-activation charges again; the balance must cover the
// full cost each time.
func (s *Service) Activate(ctx context.Context, userID string) (string, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return "", err
	}

	if profile.Balance < s.activationCost {
		return "", core.InsufficientBalanceError(s.activationCost, profile.Balance)
	}

	profile.Balance -= s.activationCost
	profile.Active = true

	updated, err := s.users.SaveUser(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("save user: %w", err)
	}
	return updated.APIKey, nil
}
