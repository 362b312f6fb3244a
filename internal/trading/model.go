package trading

import (
	"time"

	"github.com/Suleymanaz/DB-TECHv2/internal/checkout"
)

// Transaction is a committed purchase or sale document. Append-only: once
// written it is never mutated, and its stock effect is reversed only by a
// compensating transaction.
type Transaction struct {
	ID            string             `json:"id"`
	CompanyID     int64              `json:"company_id"`
	Direction     checkout.Direction `json:"direction"`
	IsReturn      bool               `json:"is_return"`
	ContactID     int64              `json:"contact_id"`
	ContactName   string             `json:"contact_name"`
	UserID        int64              `json:"user_id"`
	UserName      string             `json:"user_name"`
	Subtotal      float64            `json:"subtotal"`
	TotalDiscount float64            `json:"total_discount"`
	TotalAmount   float64            `json:"total_amount"`
	Note          string             `json:"note,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []Item             `json:"items,omitempty"`
}

// Item is a line of a committed transaction, frozen as it stood in the cart.
type Item struct {
	ID            string            `json:"id"`
	TransactionID string            `json:"transaction_id"`
	Kind          checkout.LineKind `json:"kind"`
	ProductID     int64             `json:"product_id,omitempty"`
	SKU           string            `json:"sku,omitempty"`
	Description   string            `json:"description"`
	Unit          string            `json:"unit,omitempty"`
	Quantity      int64             `json:"quantity"`
	UnitPrice     float64           `json:"unit_price"`
	Discount      float64           `json:"discount"`
	VATRate       float64           `json:"vat_rate"`
	Total         float64           `json:"total"`
}

type ListFilters struct {
	Direction checkout.Direction
	ContactID int64
	Start     time.Time
	End       time.Time
	Page      int
	Limit     int
}
