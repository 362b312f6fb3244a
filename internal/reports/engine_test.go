package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/checkout"
	"github.com/Suleymanaz/DB-TECHv2/internal/expenses"
	"github.com/Suleymanaz/DB-TECHv2/internal/trading"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	transactions := []trading.Transaction{
		{Direction: checkout.DirectionOut, TotalAmount: 1000, CreatedAt: day(2025, 3, 10)},
		{Direction: checkout.DirectionIn, TotalAmount: 400, CreatedAt: day(2025, 3, 11)},
	}
	expenseList := []expenses.Expense{
		{Category: expenses.CategoryRent, Amount: 100, Date: day(2025, 3, 12)},
	}

	s := Summarize(transactions, expenseList, Filter{})
	require.InDelta(t, 1000.0, s.TotalSales, 1e-9)
	require.InDelta(t, 400.0, s.TotalInventoryPurchases, 1e-9)
	require.InDelta(t, 100.0, s.TotalExpenses, 1e-9)
	require.InDelta(t, 500.0, s.NetProfit, 1e-9)
	require.InDelta(t, 50.0, s.ExpenseToRevenuePct, 1e-9)
	require.Equal(t, 1, s.SaleCount)
	require.Equal(t, 1, s.PurchaseCount)
	require.Equal(t, 1, s.ExpenseCount)
}

func TestSummarizeZeroSalesZeroRatio(t *testing.T) {
	transactions := []trading.Transaction{
		{Direction: checkout.DirectionIn, TotalAmount: 400, CreatedAt: day(2025, 3, 11)},
	}
	s := Summarize(transactions, nil, Filter{})
	require.Zero(t, s.ExpenseToRevenuePct)
	require.InDelta(t, -400.0, s.NetProfit, 1e-9)
}

func TestSummarizeEmptyInput(t *testing.T) {
	require.Equal(t, Summary{}, Summarize(nil, nil, Filter{}))
}

func TestSummarizeIsIdempotent(t *testing.T) {
	transactions := []trading.Transaction{
		{Direction: checkout.DirectionOut, TotalAmount: 750.25, CreatedAt: day(2025, 1, 5)},
		{Direction: checkout.DirectionIn, TotalAmount: 120.75, CreatedAt: day(2025, 1, 6)},
	}
	expenseList := []expenses.Expense{
		{Category: expenses.CategoryFuel, Amount: 33.10, Date: day(2025, 1, 7)},
	}
	filter := Filter{Start: day(2025, 1, 1), End: day(2025, 1, 31)}

	first := Summarize(transactions, expenseList, filter)
	second := Summarize(transactions, expenseList, filter)
	require.Equal(t, first, second)
}

func TestFilterBoundariesAreInclusive(t *testing.T) {
	filter := Filter{Start: day(2025, 3, 10), End: day(2025, 3, 20)}
	transactions := []trading.Transaction{
		{Direction: checkout.DirectionOut, TotalAmount: 1, CreatedAt: day(2025, 3, 10)},
		{Direction: checkout.DirectionOut, TotalAmount: 10, CreatedAt: day(2025, 3, 20)},
		// late in the end day still counts: comparison drops time-of-day
		{Direction: checkout.DirectionOut, TotalAmount: 100, CreatedAt: time.Date(2025, 3, 20, 23, 59, 59, 0, time.UTC)},
		{Direction: checkout.DirectionOut, TotalAmount: 1000, CreatedAt: day(2025, 3, 9)},
		{Direction: checkout.DirectionOut, TotalAmount: 10000, CreatedAt: day(2025, 3, 21)},
	}

	s := Summarize(transactions, nil, filter)
	require.InDelta(t, 111.0, s.TotalSales, 1e-9)
}

func TestFilterOpenEnded(t *testing.T) {
	transactions := []trading.Transaction{
		{Direction: checkout.DirectionOut, TotalAmount: 5, CreatedAt: day(2020, 1, 1)},
		{Direction: checkout.DirectionOut, TotalAmount: 7, CreatedAt: day(2030, 1, 1)},
	}

	onlyStart := Summarize(transactions, nil, Filter{Start: day(2025, 1, 1)})
	require.InDelta(t, 7.0, onlyStart.TotalSales, 1e-9)

	onlyEnd := Summarize(transactions, nil, Filter{End: day(2025, 1, 1)})
	require.InDelta(t, 5.0, onlyEnd.TotalSales, 1e-9)

	unfiltered := Summarize(transactions, nil, Filter{})
	require.InDelta(t, 12.0, unfiltered.TotalSales, 1e-9)
}

func TestExpensesByCategory(t *testing.T) {
	expenseList := []expenses.Expense{
		{Category: expenses.CategoryRent, Amount: 100, Date: day(2025, 3, 1)},
		{Category: expenses.CategoryRent, Amount: 50, Date: day(2025, 3, 2)},
		{Category: expenses.CategoryFuel, Amount: 30, Date: day(2025, 3, 3)},
	}
	buckets := ExpensesByCategory(expenseList, Filter{})
	require.InDelta(t, 150.0, buckets[expenses.CategoryRent], 1e-9)
	require.InDelta(t, 30.0, buckets[expenses.CategoryFuel], 1e-9)
	require.Len(t, buckets, 2)
}
