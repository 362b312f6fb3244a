package reports

import (
	"sort"

	"github.com/Suleymanaz/DB-TECHv2/internal/expenses"
)

func sortedCategories(buckets map[expenses.Category]float64) []expenses.Category {
	out := make([]expenses.Category, 0, len(buckets))
	for c := range buckets {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
