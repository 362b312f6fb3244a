package expenses

import "time"

// Category is drawn from a small closed set; anything else is rejected at
// the boundary.
type Category string

const (
	CategoryRent      Category = "RENT"
	CategorySalary    Category = "SALARY"
	CategoryUtilities Category = "UTILITIES"
	CategoryFuel      Category = "FUEL"
	CategoryShipping  Category = "SHIPPING"
	CategoryFood      Category = "FOOD"
	CategoryGrocery   Category = "GROCERY"
	CategoryTax       Category = "TAX"
	CategoryOther     Category = "OTHER"
)

var categories = map[Category]struct{}{
	CategoryRent:      {},
	CategorySalary:    {},
	CategoryUtilities: {},
	CategoryFuel:      {},
	CategoryShipping:  {},
	CategoryFood:      {},
	CategoryGrocery:   {},
	CategoryTax:       {},
	CategoryOther:     {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Categories lists the allowed values in a stable order for pickers.
func Categories() []Category {
	return []Category{CategoryRent, CategorySalary, CategoryUtilities,
		CategoryFuel, CategoryShipping, CategoryFood, CategoryGrocery,
		CategoryTax, CategoryOther}
}

// Expense is an operating cost entry. Append-only: created once, never
// mutated, removable by id.
type Expense struct {
	ID          string    `json:"id"`
	CompanyID   int64     `json:"company_id"`
	Category    Category  `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	UserName    string    `json:"user_name"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
