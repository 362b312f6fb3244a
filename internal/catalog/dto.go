package catalog

// ProductForm carries product create/update payloads.
type ProductForm struct {
	SKU               string  `json:"sku" validate:"required,max=64"`
	Name              string  `json:"name" validate:"required,max=255"`
	Category          string  `json:"category" validate:"required,max=64"`
	Unit              string  `json:"unit" validate:"required,max=32"`
	Stock             int64   `json:"stock"`
	CriticalThreshold int64   `json:"critical_threshold" validate:"gte=0"`
	PurchasePrice     float64 `json:"purchase_price" validate:"gte=0"`
	ExchangeRate      float64 `json:"exchange_rate" validate:"gte=0"`
	VATRate           float64 `json:"vat_rate" validate:"gte=0,lt=1"`
	OtherExpenses     float64 `json:"other_expenses" validate:"gte=0"`
	SellingPrice      float64 `json:"selling_price" validate:"gte=0"`
}

// ListFilters narrows catalog listings.
type ListFilters struct {
	Search          string
	Category        string
	IncludeArchived bool
	Page            int
	Limit           int
	SortBy          string
	SortDir         string
}
