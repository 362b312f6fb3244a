package expenses

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
)

type ListFilters struct {
	Category Category
	Start    time.Time
	End      time.Time // exclusive
	Page     int
	Limit    int
}

type Repository interface {
	List(ctx context.Context, companyID int64, filters ListFilters) ([]Expense, int, error)
	Create(ctx context.Context, expense Expense) error
	Delete(ctx context.Context, companyID int64, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context, companyID int64, filters ListFilters) ([]Expense, int, error) {
	where := ` WHERE company_id = $1`
	args := []interface{}{companyID}

	if filters.Category != "" {
		args = append(args, filters.Category)
		where += ` AND category = $` + strconv.Itoa(len(args))
	}
	if !filters.Start.IsZero() {
		args = append(args, filters.Start)
		where += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if !filters.End.IsZero() {
		args = append(args, filters.End)
		where += ` AND date < $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, company_id, category, amount, description, user_name, date, created_at
		FROM expenses` + where + ` ORDER BY date DESC, created_at DESC`
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
		offset := (filters.Page - 1) * filters.Limit
		if offset < 0 {
			offset = 0
		}
		args = append(args, offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Category, &e.Amount,
			&e.Description, &e.UserName, &e.Date, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, e Expense) error {
	_, err := r.db.Exec(ctx, `INSERT INTO expenses
		(id, company_id, category, amount, description, user_name, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.CompanyID, e.Category, e.Amount, e.Description, e.UserName, e.Date, e.CreatedAt)
	return err
}

func (r *repository) Delete(ctx context.Context, companyID int64, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}
