// stellar-backend | 2026
// service.go

package user

import (
	"context"

	"github.com/astralhq/stellar-backend/internal/auth"
	"github.com/astralhq/stellar-backend/internal/middleware"
)

// Service adapts the account repository to the consumers that need it: the
// auth flows, the request guards and the admin listing.
type Service struct {
	repo Repository
}

var (
	_ auth.UserProvider        = (*Service)(nil)
	_ middleware.AccountSource = (*Service)(nil)
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, name, email, passwordHash, apiKey string) (*auth.Profile, error) {
	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		APIKey:       apiKey,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toProfile(u), nil
}

func (s *Service) UserByID(ctx context.Context, id string) (*auth.Profile, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProfile(u), nil
}

func (s *Service) UserByEmail(ctx context.Context, email string) (*auth.Profile, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toProfile(u), nil
}

func (s *Service) SaveUser(ctx context.Context, p *auth.Profile) (*auth.Profile, error) {
	u := &User{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Balance:  p.Balance,
		IsActive: p.Active,
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return s.UserByID(ctx, p.ID)
}

func (s *Service) SaveUserPassword(ctx context.Context, id, passwordHash string) error {
	return s.repo.UpdatePassword(ctx, id, passwordHash)
}

func (s *Service) AccountByID(ctx context.Context, id string) (*middleware.Account, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAccount(u), nil
}

func (s *Service) AccountByAPIKey(ctx context.Context, apiKey string) (*middleware.Account, error) {
	u, err := s.repo.GetByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return toAccount(u), nil
}

// List returns a page of accounts plus the total count, for the admin view.
func (s *Service) List(ctx context.Context, params ListUsersParams) ([]UserResponse, int, error) {
	users, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return ToUserResponseList(users), total, nil
}

func toProfile(u *User) *auth.Profile {
	return &auth.Profile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		APIKey:       u.APIKey,
		Balance:      u.Balance,
		Active:       u.IsActive,
		Admin:        u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toAccount(u *User) *middleware.Account {
	return &middleware.Account{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Admin:  u.IsAdmin,
		Active: u.IsActive,
	}
}
