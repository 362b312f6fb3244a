package contacts

import (
	"context"
	"fmt"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, companyID int64, filters ListFilters) ([]Contact, int, error) {
	if filters.Type != "" && !filters.Type.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown contact type %q", httpx.ErrValidation, filters.Type)
	}
	return s.repo.List(ctx, companyID, filters)
}

func (s *Service) Get(ctx context.Context, companyID, id int64) (Contact, error) {
	if id <= 0 {
		return Contact{}, fmt.Errorf("%w: invalid contact id", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, companyID, id)
}

func (s *Service) Create(ctx context.Context, contact Contact) (Contact, error) {
	if err := validate(contact); err != nil {
		return Contact{}, err
	}
	return s.repo.Create(ctx, contact)
}

func (s *Service) Update(ctx context.Context, id int64, contact Contact) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid contact id", httpx.ErrValidation)
	}
	if err := validate(contact); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, contact)
}

// Archive retires a contact. Transactions keep a name snapshot, so history
// stays readable after the contact disappears from pickers.
func (s *Service) Archive(ctx context.Context, companyID, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid contact id", httpx.ErrValidation)
	}
	return s.repo.Archive(ctx, companyID, id)
}

func validate(c Contact) error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: contact type must be CUSTOMER or SUPPLIER", httpx.ErrValidation)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: contact name is required", httpx.ErrValidation)
	}
	return nil
}
