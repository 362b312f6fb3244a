package trading

import (
	"context"
	"fmt"

	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
	"github.com/Suleymanaz/DB-TECHv2/internal/checkout"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
)

// CheckoutForm is the commit payload. Lines are replayed through the cart
// builder so every boundary rule (stock guard, discount range, merge) applies
// to API callers exactly as it does in the UI flow.
type CheckoutForm struct {
	Direction checkout.Direction `json:"direction" validate:"required,oneof=IN OUT"`
	IsReturn  bool               `json:"is_return"`
	ContactID int64              `json:"contact_id" validate:"required,gt=0"`
	Note      string             `json:"note" validate:"max=500"`
	Lines     []CheckoutLine     `json:"lines" validate:"required,min=1,dive"`
}

type CheckoutLine struct {
	Kind        checkout.LineKind `json:"kind" validate:"required,oneof=PRODUCT LABOR"`
	ProductID   int64             `json:"product_id"`
	Description string            `json:"description"`
	Quantity    int64             `json:"quantity"`
	UnitPrice   float64           `json:"unit_price"`
	Discount    float64           `json:"discount"`
	Amount      float64           `json:"amount"`
}

type productLookup interface {
	Get(ctx context.Context, companyID, id int64) (catalog.Product, error)
}

// buildCart replays form lines through the cart builder. A product line with
// no explicit unit price falls back to the landed unit cost on purchases and
// the selling price on sales.
func buildCart(ctx context.Context, products productLookup, companyID int64, form CheckoutForm) (*checkout.Cart, error) {
	cart, err := checkout.NewCart(form.Direction, form.IsReturn)
	if err != nil {
		return nil, err
	}
	for _, line := range form.Lines {
		switch line.Kind {
		case checkout.LineLabor:
			if err := cart.AddLaborLine(line.Description, line.Amount); err != nil {
				return nil, err
			}
		case checkout.LineProduct:
			product, err := products.Get(ctx, companyID, line.ProductID)
			if err != nil {
				return nil, fmt.Errorf("%w: product %d not found", httpx.ErrValidation, line.ProductID)
			}
			unitPrice := line.UnitPrice
			if unitPrice == 0 {
				if form.Direction == checkout.DirectionIn {
					unitPrice = pricing.LandedUnitCost(product.Pricing)
				} else {
					unitPrice = product.SellingPrice
				}
			}
			if err := cart.AddProductLine(product, line.Quantity, unitPrice, line.Discount); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unknown line kind %q", httpx.ErrValidation, line.Kind)
		}
	}
	return cart, nil
}
