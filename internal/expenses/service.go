package expenses

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

type Service struct {
	logger      *slog.Logger
	repo        Repository
	audit       *shared.AuditLogger
	afterChange []func(ctx context.Context, companyID int64)
}

func NewService(logger *slog.Logger, repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{logger: logger, repo: repo, audit: audit}
}

// OnChange registers a hook invoked after a record or delete, used for
// report cache invalidation.
func (s *Service) OnChange(fn func(ctx context.Context, companyID int64)) {
	s.afterChange = append(s.afterChange, fn)
}

func (s *Service) List(ctx context.Context, companyID int64, filters ListFilters) ([]Expense, int, error) {
	if filters.Category != "" && !filters.Category.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown expense category %q", httpx.ErrValidation, filters.Category)
	}
	return s.repo.List(ctx, companyID, filters)
}

// Record creates an append-only expense entry stamped with the actor's name.
func (s *Service) Record(ctx context.Context, actor shared.Actor, category Category, amount float64, description string, date time.Time) (Expense, error) {
	if !category.Valid() {
		return Expense{}, fmt.Errorf("%w: unknown expense category %q", httpx.ErrValidation, category)
	}
	if amount <= 0 {
		return Expense{}, fmt.Errorf("%w: expense amount must be positive", httpx.ErrValidation)
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	e := Expense{
		ID:          uuid.NewString(),
		CompanyID:   actor.CompanyID,
		Category:    category,
		Amount:      amount,
		Description: description,
		UserName:    actor.Name,
		Date:        shared.DateOnly(date),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Expense{}, fmt.Errorf("record expense: %w", err)
	}

	if err := s.audit.Record(ctx, shared.AuditLog{
		CompanyID: actor.CompanyID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Action:    "expense.record",
		Entity:    "expense",
		EntityID:  e.ID,
	}); err != nil {
		s.logger.Error("audit record", slog.Any("error", err))
	}
	for _, fn := range s.afterChange {
		fn(ctx, actor.CompanyID)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, actor shared.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid expense id", httpx.ErrValidation)
	}
	if err := s.repo.Delete(ctx, actor.CompanyID, id); err != nil {
		return err
	}
	if err := s.audit.Record(ctx, shared.AuditLog{
		CompanyID: actor.CompanyID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Action:    "expense.delete",
		Entity:    "expense",
		EntityID:  id,
	}); err != nil {
		s.logger.Error("audit record", slog.Any("error", err))
	}
	for _, fn := range s.afterChange {
		fn(ctx, actor.CompanyID)
	}
	return nil
}
