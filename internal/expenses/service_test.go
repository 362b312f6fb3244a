package expenses

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

type fakeRepo struct {
	expenses map[string]Expense
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{expenses: make(map[string]Expense)}
}

func (f *fakeRepo) List(_ context.Context, companyID int64, filters ListFilters) ([]Expense, int, error) {
	var out []Expense
	for _, e := range f.expenses {
		if e.CompanyID != companyID {
			continue
		}
		if filters.Category != "" && e.Category != filters.Category {
			continue
		}
		if !filters.Start.IsZero() && e.Date.Before(filters.Start) {
			continue
		}
		if !filters.End.IsZero() && !e.Date.Before(filters.End) {
			continue
		}
		out = append(out, e)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Create(_ context.Context, e Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, companyID int64, id string) error {
	e, ok := f.expenses[id]
	if !ok || e.CompanyID != companyID {
		return httpx.ErrNotFound
	}
	delete(f.expenses, id)
	return nil
}

func testService(repo Repository) *Service {
	return NewService(slog.New(slog.DiscardHandler), repo, nil)
}

func actor() shared.Actor {
	return shared.Actor{ID: 2, Name: "Ali", Role: "ADMIN", CompanyID: 1}
}

func TestRecordValidation(t *testing.T) {
	svc := testService(newFakeRepo())

	_, err := svc.Record(context.Background(), actor(), "GAMBLING", 100, "", time.Time{})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Record(context.Background(), actor(), CategoryRent, 0, "", time.Time{})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Record(context.Background(), actor(), CategoryRent, -50, "", time.Time{})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestRecordStampsActorAndDay(t *testing.T) {
	svc := testService(newFakeRepo())

	when := time.Date(2025, 3, 14, 17, 45, 12, 0, time.UTC)
	e, err := svc.Record(context.Background(), actor(), CategorySalary, 1500, "March payroll", when)
	require.NoError(t, err)
	require.Equal(t, "Ali", e.UserName)
	require.Equal(t, int64(1), e.CompanyID)
	require.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), e.Date, "time of day is dropped")
	require.NotEmpty(t, e.ID)
}

func TestDeleteIsScopedToTenant(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	e, err := svc.Record(context.Background(), actor(), CategoryFuel, 80, "", time.Time{})
	require.NoError(t, err)

	other := shared.Actor{ID: 5, Name: "Ece", Role: "ADMIN", CompanyID: 2}
	require.ErrorIs(t, svc.Delete(context.Background(), other, e.ID), httpx.ErrNotFound)
	require.NoError(t, svc.Delete(context.Background(), actor(), e.ID))

	require.ErrorIs(t, svc.Delete(context.Background(), actor(), "not-a-uuid"), httpx.ErrValidation)
}

func TestCategorySetIsClosed(t *testing.T) {
	want := []Category{
		CategoryRent, CategorySalary, CategoryUtilities, CategoryFuel,
		CategoryShipping, CategoryFood, CategoryGrocery, CategoryTax,
		CategoryOther,
	}
	require.Equal(t, want, Categories())
	for _, c := range want {
		require.True(t, c.Valid(), string(c))
	}
	require.False(t, Category("TRAVEL").Valid())
}
