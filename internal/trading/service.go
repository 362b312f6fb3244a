package trading

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Suleymanaz/DB-TECHv2/internal/checkout"
	"github.com/Suleymanaz/DB-TECHv2/internal/contacts"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

type Service struct {
	logger      *slog.Logger
	repo        Repository
	audit       *shared.AuditLogger
	afterCommit []func(ctx context.Context, companyID int64)
}

func NewService(logger *slog.Logger, repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{logger: logger, repo: repo, audit: audit}
}

// OnCommit registers a hook invoked after every successful commit, used for
// cache invalidation and queueing follow-up work.
func (s *Service) OnCommit(fn func(ctx context.Context, companyID int64)) {
	s.afterCommit = append(s.afterCommit, fn)
}

// Commit freezes a cart into an append-only transaction document and applies
// its stock deltas, all in one atomic write. A missing product makes that
// line's stock update a logged no-op; the document itself still commits.
func (s *Service) Commit(ctx context.Context, actor shared.Actor, counterparty contacts.Contact, cart *checkout.Cart, note string) (Transaction, error) {
	if cart == nil || cart.Empty() {
		return Transaction{}, fmt.Errorf("%w: cart is empty", httpx.ErrValidation)
	}
	if counterparty.ID == 0 || counterparty.Name == "" {
		return Transaction{}, fmt.Errorf("%w: a counterparty is required", httpx.ErrValidation)
	}
	if cart.Direction == checkout.DirectionOut && counterparty.Type != contacts.TypeCustomer {
		return Transaction{}, fmt.Errorf("%w: sales require a customer", httpx.ErrValidation)
	}
	if cart.Direction == checkout.DirectionIn && counterparty.Type != contacts.TypeSupplier {
		return Transaction{}, fmt.Errorf("%w: purchases require a supplier", httpx.ErrValidation)
	}

	totals := cart.Totals()
	t := Transaction{
		ID:            uuid.NewString(),
		CompanyID:     actor.CompanyID,
		Direction:     cart.Direction,
		IsReturn:      cart.IsReturn,
		ContactID:     counterparty.ID,
		ContactName:   counterparty.Name,
		UserID:        actor.ID,
		UserName:      actor.Name,
		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		TotalAmount:   totals.TotalAmount,
		Note:          note,
		CreatedAt:     time.Now().UTC(),
	}
	var movements []StockMovement
	for _, line := range cart.Lines {
		t.Items = append(t.Items, Item{
			ID:            uuid.NewString(),
			TransactionID: t.ID,
			Kind:          line.Kind,
			ProductID:     line.ProductID,
			SKU:           line.SKU,
			Description:   line.Description,
			Unit:          line.Unit,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			Discount:      line.Discount,
			VATRate:       line.VATRate,
			Total:         line.Total(),
		})
		if delta := StockDelta(cart.Direction, cart.IsReturn, line.Kind, line.Quantity); delta != 0 {
			movements = append(movements, StockMovement{ProductID: line.ProductID, Delta: delta})
		}
	}

	missing, err := s.repo.Commit(ctx, t, movements)
	if err != nil {
		return Transaction{}, fmt.Errorf("commit transaction: %w", err)
	}
	for _, productID := range missing {
		s.logger.Warn("stock update skipped: product not found",
			slog.Int64("product_id", productID),
			slog.String("transaction_id", t.ID))
	}

	if err := s.audit.Record(ctx, shared.AuditLog{
		CompanyID: t.CompanyID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Action:    auditAction(cart.Direction, cart.IsReturn),
		Entity:    "transaction",
		EntityID:  t.ID,
	}); err != nil {
		s.logger.Error("audit record", slog.Any("error", err))
	}
	for _, fn := range s.afterCommit {
		fn(ctx, t.CompanyID)
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, companyID int64, filters ListFilters) ([]Transaction, int, error) {
	if filters.Direction != "" && !filters.Direction.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown direction %q", httpx.ErrValidation, filters.Direction)
	}
	return s.repo.List(ctx, companyID, filters)
}

func (s *Service) Get(ctx context.Context, companyID int64, id string) (Transaction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid transaction id", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, companyID, id)
}

func auditAction(direction checkout.Direction, isReturn bool) string {
	switch {
	case direction == checkout.DirectionIn && isReturn:
		return "purchase.return"
	case direction == checkout.DirectionIn:
		return "purchase.commit"
	case isReturn:
		return "sale.return"
	default:
		return "sale.commit"
	}
}
