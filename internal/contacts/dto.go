package contacts

type ContactForm struct {
	Type      Type   `json:"type" validate:"required,oneof=CUSTOMER SUPPLIER"`
	Name      string `json:"name" validate:"required,max=160"`
	Phone     string `json:"phone" validate:"max=32"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address" validate:"max=400"`
	TaxNumber string `json:"tax_number" validate:"max=32"`
}

type ListFilters struct {
	Type            Type
	Search          string
	IncludeArchived bool
	Page            int
	Limit           int
}
