package contacts

import "time"

type Type string

const (
	TypeCustomer Type = "CUSTOMER"
	TypeSupplier Type = "SUPPLIER"
)

func (t Type) Valid() bool {
	return t == TypeCustomer || t == TypeSupplier
}

// Contact is a trading counterparty. Sales reference customers, purchases
// reference suppliers.
type Contact struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Type      Type      `json:"type"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	TaxNumber string    `json:"tax_number"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
