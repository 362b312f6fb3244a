package contacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
)

type fakeRepo struct {
	contacts map[int64]Contact
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{contacts: make(map[int64]Contact), nextID: 1}
}

func (f *fakeRepo) List(_ context.Context, companyID int64, filters ListFilters) ([]Contact, int, error) {
	var out []Contact
	for _, c := range f.contacts {
		if c.CompanyID != companyID {
			continue
		}
		if c.Archived && !filters.IncludeArchived {
			continue
		}
		if filters.Type != "" && c.Type != filters.Type {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Get(_ context.Context, companyID, id int64) (Contact, error) {
	c, ok := f.contacts[id]
	if !ok || c.CompanyID != companyID {
		return Contact{}, httpx.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) Create(_ context.Context, c Contact) (Contact, error) {
	c.ID = f.nextID
	f.nextID++
	f.contacts[c.ID] = c
	return c, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, c Contact) error {
	existing, ok := f.contacts[id]
	if !ok || existing.CompanyID != c.CompanyID {
		return httpx.ErrNotFound
	}
	c.ID = id
	f.contacts[id] = c
	return nil
}

func (f *fakeRepo) Archive(_ context.Context, companyID, id int64) error {
	c, ok := f.contacts[id]
	if !ok || c.CompanyID != companyID {
		return httpx.ErrNotFound
	}
	c.Archived = true
	f.contacts[id] = c
	return nil
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), Contact{CompanyID: 1, Type: "VENDOR", Name: "Acme"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(context.Background(), Contact{CompanyID: 1, Type: TypeSupplier})
	require.ErrorIs(t, err, httpx.ErrValidation)

	created, err := svc.Create(context.Background(), Contact{CompanyID: 1, Type: TypeSupplier, Name: "Acme Elektronik"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
}

func TestServiceListFiltersByType(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), Contact{CompanyID: 1, Type: TypeSupplier, Name: "Acme"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), Contact{CompanyID: 1, Type: TypeCustomer, Name: "Mehmet Usta"})
	require.NoError(t, err)

	customers, total, err := svc.List(context.Background(), 1, ListFilters{Type: TypeCustomer})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Mehmet Usta", customers[0].Name)

	_, _, err = svc.List(context.Background(), 1, ListFilters{Type: "OTHER"})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestServiceArchiveKeepsRecord(t *testing.T) {
	svc := NewService(newFakeRepo())

	created, err := svc.Create(context.Background(), Contact{CompanyID: 1, Type: TypeCustomer, Name: "Mehmet Usta"})
	require.NoError(t, err)
	require.NoError(t, svc.Archive(context.Background(), 1, created.ID))

	visible, _, err := svc.List(context.Background(), 1, ListFilters{})
	require.NoError(t, err)
	require.Empty(t, visible)

	all, _, err := svc.List(context.Background(), 1, ListFilters{IncludeArchived: true})
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestServiceTenantScoping(t *testing.T) {
	svc := NewService(newFakeRepo())

	created, err := svc.Create(context.Background(), Contact{CompanyID: 1, Type: TypeCustomer, Name: "Mehmet Usta"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), 2, created.ID)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
