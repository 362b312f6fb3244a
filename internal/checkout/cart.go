// Package checkout builds purchase and sale carts in memory. A cart is pure
// state: nothing is persisted or reserved until the trading service commits
// it as a transaction.
package checkout

import (
	"fmt"

	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
)

type Direction string

const (
	DirectionIn  Direction = "IN"  // purchase
	DirectionOut Direction = "OUT" // sale
)

func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

type LineKind string

const (
	LineProduct LineKind = "PRODUCT"
	LineLabor   LineKind = "LABOR"
)

// Line is a single cart entry. Product lines snapshot the product's name and
// VAT rate at add time so later catalog edits cannot change a committed
// document. Labor lines carry no stock movement.
type Line struct {
	Kind        LineKind `json:"kind"`
	ProductID   int64    `json:"product_id,omitempty"`
	SKU         string   `json:"sku,omitempty"`
	Description string   `json:"description"`
	Unit        string   `json:"unit,omitempty"`
	Quantity    int64    `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	Discount    float64  `json:"discount"` // percent, 0..100
	VATRate     float64  `json:"vat_rate"`
}

// Total is the line amount after discount.
func (l Line) Total() float64 {
	return l.UnitPrice * float64(l.Quantity) * (1 - l.Discount/100)
}

// Gross is the line amount before discount.
func (l Line) Gross() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

type Cart struct {
	Direction Direction `json:"direction"`
	IsReturn  bool      `json:"is_return"`
	Lines     []Line    `json:"lines"`
}

func NewCart(direction Direction, isReturn bool) (*Cart, error) {
	if !direction.Valid() {
		return nil, fmt.Errorf("%w: direction must be IN or OUT", httpx.ErrValidation)
	}
	return &Cart{Direction: direction, IsReturn: isReturn}, nil
}

// AddProductLine appends a product entry, merging into an existing line when
// the product, unit price and discount all match. Outbound carts are capped
// at the product's stock level counting quantity already queued in the cart.
func (c *Cart) AddProductLine(product catalog.Product, quantity int64, unitPrice, discount float64) error {
	if err := validateLine(quantity, unitPrice, discount); err != nil {
		return err
	}
	if c.Direction == DirectionOut {
		if quantity+c.QueuedQuantity(product.ID) > product.Stock {
			return fmt.Errorf("%w: insufficient stock for %s: %d available", httpx.ErrValidation, product.SKU, product.Stock)
		}
	}

	for i, line := range c.Lines {
		if line.Kind == LineProduct && line.ProductID == product.ID &&
			line.UnitPrice == unitPrice && line.Discount == discount {
			c.Lines[i].Quantity += quantity
			return nil
		}
	}

	c.Lines = append(c.Lines, Line{
		Kind:        LineProduct,
		ProductID:   product.ID,
		SKU:         product.SKU,
		Description: product.Name,
		Unit:        product.Unit,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
		VATRate:     product.Pricing.VATRate,
	})
	return nil
}

// AddLaborLine appends a service charge. Labor never moves stock and is
// taxed at the standard rate.
func (c *Cart) AddLaborLine(description string, amount float64) error {
	if description == "" {
		return fmt.Errorf("%w: labor description is required", httpx.ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: labor amount must be positive", httpx.ErrValidation)
	}
	c.Lines = append(c.Lines, Line{
		Kind:        LineLabor,
		Description: description,
		Quantity:    1,
		UnitPrice:   amount,
		VATRate:     pricing.StandardVATRate,
	})
	return nil
}

func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return fmt.Errorf("%w: no cart line at index %d", httpx.ErrValidation, index)
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return nil
}

// QueuedQuantity sums the quantity of a product already in the cart.
func (c *Cart) QueuedQuantity(productID int64) int64 {
	var total int64
	for _, line := range c.Lines {
		if line.Kind == LineProduct && line.ProductID == productID {
			total += line.Quantity
		}
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

func validateLine(quantity int64, unitPrice, discount float64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", httpx.ErrValidation)
	}
	if unitPrice < 0 {
		return fmt.Errorf("%w: unit price cannot be negative", httpx.ErrValidation)
	}
	if discount < 0 || discount > 100 {
		return fmt.Errorf("%w: discount must be between 0 and 100", httpx.ErrValidation)
	}
	return nil
}
