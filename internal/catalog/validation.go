package catalog

import (
	"fmt"
	"strings"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
)

func (s *Service) validate(p Product) error {
	if strings.TrimSpace(p.SKU) == "" {
		return fmt.Errorf("%w: product sku is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", httpx.ErrValidation)
	}
	if p.CriticalThreshold < 0 {
		return fmt.Errorf("%w: critical threshold must not be negative", httpx.ErrValidation)
	}
	if p.Pricing.PurchasePrice < 0 || p.Pricing.ExchangeRate < 0 || p.Pricing.VATRate < 0 || p.Pricing.OtherExpenses < 0 {
		return fmt.Errorf("%w: cost fields must not be negative", httpx.ErrValidation)
	}
	if p.SellingPrice < 0 {
		return fmt.Errorf("%w: selling price must not be negative", httpx.ErrValidation)
	}
	return nil
}
