package users

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
)

const userColumns = `id, company_id, name, email, role, password_hash, active, created_at, updated_at`

type Repository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	SetRole(ctx context.Context, companyID, id int64, role string) error
	SetActive(ctx context.Context, companyID, id int64, active bool) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) GetByID(ctx context.Context, id int64) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

func (r *repository) ListByCompany(ctx context.Context, companyID int64) ([]User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, u User) (User, error) {
	now := time.Now().UTC()
	err := r.db.QueryRow(ctx, `INSERT INTO users
		(company_id, name, email, role, password_hash, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)
		RETURNING id`,
		u.CompanyID, u.Name, u.Email, u.Role, u.PasswordHash, now,
	).Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, httpx.ErrDuplicate
		}
		return User{}, err
	}
	u.Active = true
	u.CreatedAt = now
	u.UpdatedAt = now
	return u, nil
}

func (r *repository) SetRole(ctx context.Context, companyID, id int64, role string) error {
	return r.exec(ctx, `UPDATE users SET role = $1, updated_at = $2 WHERE id = $3 AND company_id = $4`,
		role, time.Now().UTC(), id, companyID)
}

func (r *repository) SetActive(ctx context.Context, companyID, id int64, active bool) error {
	return r.exec(ctx, `UPDATE users SET active = $1, updated_at = $2 WHERE id = $3 AND company_id = $4`,
		active, time.Now().UTC(), id, companyID)
}

func (r *repository) exec(ctx context.Context, query string, args ...interface{}) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.Role,
		&u.PasswordHash, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, httpx.ErrNotFound
	}
	return u, err
}
