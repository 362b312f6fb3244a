package trading

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
	"github.com/Suleymanaz/DB-TECHv2/internal/checkout"
	"github.com/Suleymanaz/DB-TECHv2/internal/contacts"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

// fakeRepo applies commits against an in-memory stock table, mirroring the
// all-or-nothing write of the real repository.
type fakeRepo struct {
	transactions []Transaction
	stock        map[int64]int64
}

func newFakeRepo(stock map[int64]int64) *fakeRepo {
	if stock == nil {
		stock = make(map[int64]int64)
	}
	return &fakeRepo{stock: stock}
}

func (f *fakeRepo) Commit(_ context.Context, t Transaction, movements []StockMovement) ([]int64, error) {
	var missing []int64
	for _, m := range movements {
		if _, ok := f.stock[m.ProductID]; !ok {
			missing = append(missing, m.ProductID)
			continue
		}
		f.stock[m.ProductID] += m.Delta
	}
	f.transactions = append(f.transactions, t)
	return missing, nil
}

func (f *fakeRepo) List(_ context.Context, companyID int64, _ ListFilters) ([]Transaction, int, error) {
	var out []Transaction
	for _, t := range f.transactions {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) Get(_ context.Context, companyID int64, id string) (Transaction, error) {
	for _, t := range f.transactions {
		if t.CompanyID == companyID && t.ID == id {
			return t, nil
		}
	}
	return Transaction{}, httpx.ErrNotFound
}

func testService(repo *fakeRepo) *Service {
	logger := slog.New(slog.DiscardHandler)
	return NewService(logger, repo, nil)
}

func testActor() shared.Actor {
	return shared.Actor{ID: 3, Name: "Ayşe", Role: "SALES", CompanyID: 1}
}

func customer() contacts.Contact {
	return contacts.Contact{ID: 9, CompanyID: 1, Type: contacts.TypeCustomer, Name: "Mehmet Usta"}
}

func supplier() contacts.Contact {
	return contacts.Contact{ID: 4, CompanyID: 1, Type: contacts.TypeSupplier, Name: "Acme Elektronik"}
}

func camera(stock int64) catalog.Product {
	return catalog.Product{
		ID:      1,
		SKU:     "CAM-01",
		Name:    "Dome Camera",
		Unit:    "pcs",
		Stock:   stock,
		Pricing: pricing.Pricing{PurchasePrice: 10, ExchangeRate: 2, VATRate: 0.20, OtherExpenses: 5},
	}
}

func TestCommitRejectsEmptyCart(t *testing.T) {
	svc := testService(newFakeRepo(nil))
	cart, _ := checkout.NewCart(checkout.DirectionOut, false)

	_, err := svc.Commit(context.Background(), testActor(), customer(), cart, "")
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Commit(context.Background(), testActor(), customer(), nil, "")
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCommitRequiresMatchingCounterparty(t *testing.T) {
	svc := testService(newFakeRepo(map[int64]int64{1: 50}))

	sale, _ := checkout.NewCart(checkout.DirectionOut, false)
	require.NoError(t, sale.AddProductLine(camera(50), 1, 60, 0))

	_, err := svc.Commit(context.Background(), testActor(), contacts.Contact{}, sale, "")
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Commit(context.Background(), testActor(), supplier(), sale, "")
	require.ErrorIs(t, err, httpx.ErrValidation)

	purchase, _ := checkout.NewCart(checkout.DirectionIn, false)
	require.NoError(t, purchase.AddProductLine(camera(50), 1, 29, 0))
	_, err = svc.Commit(context.Background(), testActor(), customer(), purchase, "")
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCommitAppliesStockDeltas(t *testing.T) {
	repo := newFakeRepo(map[int64]int64{1: 20})
	svc := testService(repo)

	sale, _ := checkout.NewCart(checkout.DirectionOut, false)
	require.NoError(t, sale.AddProductLine(camera(20), 5, 60, 0))
	require.NoError(t, sale.AddLaborLine("Installation", 250))

	committed, err := svc.Commit(context.Background(), testActor(), customer(), sale, "site visit")
	require.NoError(t, err)
	require.Equal(t, int64(15), repo.stock[1], "OUT decreases stock; labor is skipped")
	require.Len(t, committed.Items, 2)
	require.NotEmpty(t, committed.ID)
	require.Equal(t, "Mehmet Usta", committed.ContactName)
	require.Equal(t, "Ayşe", committed.UserName)
}

func TestCommitSupplierReturnDecreasesStock(t *testing.T) {
	repo := newFakeRepo(map[int64]int64{1: 20})
	svc := testService(repo)

	ret, _ := checkout.NewCart(checkout.DirectionIn, true)
	require.NoError(t, ret.AddProductLine(camera(20), 5, 29, 0))

	_, err := svc.Commit(context.Background(), testActor(), supplier(), ret, "")
	require.NoError(t, err)
	require.Equal(t, int64(15), repo.stock[1])
}

func TestCommitMissingProductIsLoggedNoOp(t *testing.T) {
	repo := newFakeRepo(map[int64]int64{}) // no stock rows at all
	svc := testService(repo)

	sale, _ := checkout.NewCart(checkout.DirectionOut, false)
	require.NoError(t, sale.AddProductLine(camera(20), 5, 60, 0))

	committed, err := svc.Commit(context.Background(), testActor(), customer(), sale, "")
	require.NoError(t, err, "the document still commits")
	require.Len(t, repo.transactions, 1)
	require.Equal(t, committed.ID, repo.transactions[0].ID)
}

func TestCommitFreezesTotals(t *testing.T) {
	repo := newFakeRepo(map[int64]int64{1: 100})
	svc := testService(repo)

	sale, _ := checkout.NewCart(checkout.DirectionOut, false)
	require.NoError(t, sale.AddProductLine(camera(100), 3, 100, 10))

	committed, err := svc.Commit(context.Background(), testActor(), customer(), sale, "")
	require.NoError(t, err)
	require.InDelta(t, 300.0, committed.Subtotal, 1e-9)
	require.InDelta(t, 270.0, committed.TotalAmount, 1e-9)
	require.InDelta(t, 30.0, committed.TotalDiscount, 1e-9)
	require.InDelta(t, committed.Subtotal-committed.TotalDiscount, committed.TotalAmount, 1e-9)
}

func TestGetRejectsMalformedID(t *testing.T) {
	svc := testService(newFakeRepo(nil))
	_, err := svc.Get(context.Background(), 1, "not-a-uuid")
	require.ErrorIs(t, err, httpx.ErrValidation)
}
