package catalog

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

func (s *Service) List(ctx context.Context, companyID int64, filters ListFilters) ([]Product, int, error) {
	return s.repo.List(ctx, companyID, filters)
}

func (s *Service) Get(ctx context.Context, companyID, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: invalid product id", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, companyID, id)
}

func (s *Service) Create(ctx context.Context, product Product) (Product, error) {
	if err := s.validate(product); err != nil {
		return Product{}, err
	}
	return s.repo.Create(ctx, product)
}

func (s *Service) Update(ctx context.Context, id int64, product Product) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid product id", httpx.ErrValidation)
	}
	if err := s.validate(product); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, product)
}

// Archive retires a product from the active catalog. Products are never hard
// deleted while historical transactions may reference them.
func (s *Service) Archive(ctx context.Context, companyID, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid product id", httpx.ErrValidation)
	}
	return s.repo.Archive(ctx, companyID, id)
}

func (s *Service) ListCategories(ctx context.Context, companyID int64) ([]Category, error) {
	return s.repo.ListCategories(ctx, companyID)
}

// AddCategory registers a category name. Duplicate names are rejected.
func (s *Service) AddCategory(ctx context.Context, companyID int64, name string) (Category, error) {
	if name == "" {
		return Category{}, fmt.Errorf("%w: category name is required", httpx.ErrValidation)
	}
	return s.repo.AddCategory(ctx, companyID, name)
}

func (s *Service) ListUnits(ctx context.Context, companyID int64) ([]Unit, error) {
	return s.repo.ListUnits(ctx, companyID)
}

// AddUnit registers a unit-of-measure name. Duplicate names are rejected.
func (s *Service) AddUnit(ctx context.Context, companyID int64, name string) (Unit, error) {
	if name == "" {
		return Unit{}, fmt.Errorf("%w: unit name is required", httpx.ErrValidation)
	}
	return s.repo.AddUnit(ctx, companyID, name)
}

// Import persists an already parsed batch of products. The parse step has
// rejected malformed files wholesale before this point.
func (s *Service) Import(ctx context.Context, products []Product) (int, error) {
	if len(products) == 0 {
		return 0, fmt.Errorf("%w: import file contains no rows", httpx.ErrValidation)
	}
	for _, p := range products {
		if err := s.validate(p); err != nil {
			return 0, err
		}
	}
	if err := s.repo.CreateBatch(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}
