package users

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
)

const minPasswordLength = 8

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(email))
}

func (s *Service) ListByCompany(ctx context.Context, companyID int64) ([]User, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// Create registers an account with a bcrypt password hash.
func (s *Service) Create(ctx context.Context, companyID int64, name, email, password string, role rbac.Role) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return User{}, fmt.Errorf("%w: name and email are required", httpx.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return User{}, fmt.Errorf("%w: password must be at least %d characters", httpx.ErrValidation, minPasswordLength)
	}
	if !role.Valid() || role == rbac.RoleSuperAdmin {
		return User{}, fmt.Errorf("%w: invalid role %q", httpx.ErrValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, User{
		CompanyID:    companyID,
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	})
}

func (s *Service) SetRole(ctx context.Context, companyID, id int64, role rbac.Role) error {
	if !role.Valid() || role == rbac.RoleSuperAdmin {
		return fmt.Errorf("%w: invalid role %q", httpx.ErrValidation, role)
	}
	return s.repo.SetRole(ctx, companyID, id, string(role))
}

func (s *Service) SetActive(ctx context.Context, companyID, id int64, active bool) error {
	return s.repo.SetActive(ctx, companyID, id, active)
}

// Authenticate verifies credentials and returns the account. Deactivated
// accounts fail with the same error as a wrong password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return User{}, httpx.ErrUnauthorized
	}
	if !user.Active {
		return User{}, httpx.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, httpx.ErrUnauthorized
	}
	return user, nil
}
