// Package reports computes profit and loss summaries from committed
// transactions and expense records. The engine is pure aggregation over
// in-memory slices: same input, same output, no hidden state.
package reports

import (
	"time"

	"github.com/Suleymanaz/DB-TECHv2/internal/checkout"
	"github.com/Suleymanaz/DB-TECHv2/internal/expenses"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
	"github.com/Suleymanaz/DB-TECHv2/internal/trading"
)

// Filter is an optional inclusive date range. Comparisons drop time-of-day,
// so a record stamped anywhere within the start or end day matches.
type Filter struct {
	Start time.Time
	End   time.Time
}

func (f Filter) matches(at time.Time) bool {
	day := shared.DateOnly(at)
	if !f.Start.IsZero() && day.Before(shared.DateOnly(f.Start)) {
		return false
	}
	if !f.End.IsZero() && day.After(shared.DateOnly(f.End)) {
		return false
	}
	return true
}

// Summary is a period's profit and loss picture. ExpenseToRevenuePct folds
// inventory purchases and operating expenses together against sales revenue.
type Summary struct {
	TotalSales              float64 `json:"total_sales"`
	TotalInventoryPurchases float64 `json:"total_inventory_purchases"`
	TotalExpenses           float64 `json:"total_expenses"`
	NetProfit               float64 `json:"net_profit"`
	ExpenseToRevenuePct     float64 `json:"expense_to_revenue_pct"`
	SaleCount               int     `json:"sale_count"`
	PurchaseCount           int     `json:"purchase_count"`
	ExpenseCount            int     `json:"expense_count"`
}

// Summarize aggregates the given records into a Summary, applying the date
// filter to both sets. An empty result yields all-zero metrics.
func Summarize(transactions []trading.Transaction, expenseList []expenses.Expense, filter Filter) Summary {
	var s Summary
	for _, t := range transactions {
		if !filter.matches(t.CreatedAt) {
			continue
		}
		switch t.Direction {
		case checkout.DirectionOut:
			s.TotalSales += t.TotalAmount
			s.SaleCount++
		case checkout.DirectionIn:
			s.TotalInventoryPurchases += t.TotalAmount
			s.PurchaseCount++
		}
	}
	for _, e := range expenseList {
		if !filter.matches(e.Date) {
			continue
		}
		s.TotalExpenses += e.Amount
		s.ExpenseCount++
	}

	s.NetProfit = s.TotalSales - (s.TotalInventoryPurchases + s.TotalExpenses)
	if s.TotalSales != 0 {
		s.ExpenseToRevenuePct = (s.TotalInventoryPurchases + s.TotalExpenses) / s.TotalSales * 100
	}
	return s
}

// ExpensesByCategory buckets filtered expenses for the breakdown chart.
func ExpensesByCategory(expenseList []expenses.Expense, filter Filter) map[expenses.Category]float64 {
	out := make(map[expenses.Category]float64)
	for _, e := range expenseList {
		if filter.matches(e.Date) {
			out[e.Category] += e.Amount
		}
	}
	return out
}
