package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
)

type fakeRepo struct {
	products   map[int64]Product
	categories []Category
	units      []Unit
	nextID     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[int64]Product), nextID: 1}
}

func (f *fakeRepo) List(_ context.Context, companyID int64, filters ListFilters) ([]Product, int, error) {
	var out []Product
	for _, p := range f.products {
		if p.CompanyID != companyID {
			continue
		}
		if p.Archived && !filters.IncludeArchived {
			continue
		}
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Get(_ context.Context, companyID, id int64) (Product, error) {
	p, ok := f.products[id]
	if !ok || p.CompanyID != companyID {
		return Product{}, httpx.ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) Create(_ context.Context, p Product) (Product, error) {
	for _, existing := range f.products {
		if existing.CompanyID == p.CompanyID && existing.SKU == p.SKU {
			return Product{}, httpx.ErrDuplicate
		}
	}
	p.ID = f.nextID
	f.nextID++
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeRepo) CreateBatch(ctx context.Context, products []Product) error {
	for _, p := range products {
		if _, err := f.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, p Product) error {
	existing, ok := f.products[id]
	if !ok || existing.CompanyID != p.CompanyID {
		return httpx.ErrNotFound
	}
	p.ID = id
	f.products[id] = p
	return nil
}

func (f *fakeRepo) Archive(_ context.Context, companyID, id int64) error {
	p, ok := f.products[id]
	if !ok || p.CompanyID != companyID {
		return httpx.ErrNotFound
	}
	p.Archived = true
	f.products[id] = p
	return nil
}

func (f *fakeRepo) ListBelowThreshold(_ context.Context, companyID int64) ([]Product, error) {
	var out []Product
	for _, p := range f.products {
		if p.CompanyID == companyID && !p.Archived && p.Critical() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListCategories(_ context.Context, _ int64) ([]Category, error) {
	return f.categories, nil
}

func (f *fakeRepo) AddCategory(_ context.Context, companyID int64, name string) (Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return Category{}, httpx.ErrDuplicate
		}
	}
	c := Category{ID: int64(len(f.categories) + 1), CompanyID: companyID, Name: name}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeRepo) ListUnits(_ context.Context, _ int64) ([]Unit, error) {
	return f.units, nil
}

func (f *fakeRepo) AddUnit(_ context.Context, companyID int64, name string) (Unit, error) {
	for _, u := range f.units {
		if u.Name == name {
			return Unit{}, httpx.ErrDuplicate
		}
	}
	u := Unit{ID: int64(len(f.units) + 1), CompanyID: companyID, Name: name}
	f.units = append(f.units, u)
	return u, nil
}

func validProduct() Product {
	return Product{
		CompanyID:         1,
		SKU:               "CBL-001",
		Name:              "Cat6 Cable 305m",
		Category:          "Cabling",
		Unit:              "box",
		Stock:             12,
		CriticalThreshold: 3,
		Pricing: pricing.Pricing{
			PurchasePrice: 40,
			ExchangeRate:  1,
			VATRate:       pricing.StandardVATRate,
		},
		SellingPrice: 75,
	}
}

func TestServiceCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validProduct())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = svc.Create(context.Background(), validProduct())
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestServiceCreateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Product)
	}{
		{"missing sku", func(p *Product) { p.SKU = "" }},
		{"missing name", func(p *Product) { p.Name = "" }},
		{"negative threshold", func(p *Product) { p.CriticalThreshold = -1 }},
		{"negative purchase price", func(p *Product) { p.Pricing.PurchasePrice = -5 }},
		{"negative selling price", func(p *Product) { p.SellingPrice = -1 }},
	}
	svc := NewService(newFakeRepo())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)
			_, err := svc.Create(context.Background(), p)
			require.ErrorIs(t, err, httpx.ErrValidation)
		})
	}
}

func TestServiceArchiveHidesFromDefaultList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validProduct())
	require.NoError(t, err)
	require.NoError(t, svc.Archive(context.Background(), 1, created.ID))

	products, total, err := svc.List(context.Background(), 1, ListFilters{})
	require.NoError(t, err)
	require.Empty(t, products)
	require.Zero(t, total)

	products, _, err = svc.List(context.Background(), 1, ListFilters{IncludeArchived: true})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.True(t, products[0].Archived)
}

func TestServiceTenantIsolation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validProduct())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), 2, created.ID)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServiceAddCategoryDuplicate(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.AddCategory(context.Background(), 1, "Cabling")
	require.NoError(t, err)
	_, err = svc.AddCategory(context.Background(), 1, "Cabling")
	require.ErrorIs(t, err, httpx.ErrDuplicate)

	_, err = svc.AddCategory(context.Background(), 1, "")
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestServiceImportRejectsInvalidRow(t *testing.T) {
	svc := NewService(newFakeRepo())

	batch := []Product{validProduct()}
	bad := validProduct()
	bad.SKU = "CBL-002"
	bad.SellingPrice = -10
	batch = append(batch, bad)

	_, err := svc.Import(context.Background(), batch)
	require.ErrorIs(t, err, httpx.ErrValidation)

	products, _, err := svc.List(context.Background(), 1, ListFilters{})
	require.NoError(t, err)
	require.Empty(t, products, "a rejected batch must persist nothing")
}
