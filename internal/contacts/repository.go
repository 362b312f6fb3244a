package contacts

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
)

const contactColumns = `id, company_id, type, name, phone, email, address, tax_number, archived, created_at, updated_at`

type Repository interface {
	List(ctx context.Context, companyID int64, filters ListFilters) ([]Contact, int, error)
	Get(ctx context.Context, companyID, id int64) (Contact, error)
	Create(ctx context.Context, contact Contact) (Contact, error)
	Update(ctx context.Context, id int64, contact Contact) error
	Archive(ctx context.Context, companyID, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, companyID int64, filters ListFilters) ([]Contact, int, error) {
	where := ` WHERE company_id = $1`
	args := []interface{}{companyID}

	if !filters.IncludeArchived {
		where += ` AND NOT archived`
	}
	if filters.Type != "" {
		args = append(args, filters.Type)
		where += ` AND type = $` + strconv.Itoa(len(args))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := strconv.Itoa(len(args))
		where += ` AND (name ILIKE $` + n + ` OR phone ILIKE $` + n + ` OR email ILIKE $` + n + `)`
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + contactColumns + ` FROM contacts` + where + ` ORDER BY name ASC`
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

	var contacts []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}

func (r *repository) Get(ctx context.Context, companyID, id int64) (Contact, error) {
	row := r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE company_id = $1 AND id = $2`, companyID, id)
	c, err := scanContact(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Contact{}, httpx.ErrNotFound
	}
	return c, err
}

func (r *repository) Create(ctx context.Context, contact Contact) (Contact, error) {
	now := time.Now().UTC()
	err := r.db.QueryRow(ctx, `INSERT INTO contacts
		(company_id, type, name, phone, email, address, tax_number, archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $8)
		RETURNING id`,
		contact.CompanyID, contact.Type, contact.Name, contact.Phone, contact.Email,
		contact.Address, contact.TaxNumber, now,
	).Scan(&contact.ID)
	if err != nil {
		return Contact{}, translateUnique(err)
	}
	contact.CreatedAt = now
	contact.UpdatedAt = now
	return contact, nil
}

func (r *repository) Update(ctx context.Context, id int64, contact Contact) error {
	tag, err := r.db.Exec(ctx, `UPDATE contacts SET
		type = $1, name = $2, phone = $3, email = $4, address = $5, tax_number = $6, updated_at = $7
		WHERE id = $8 AND company_id = $9`,
		contact.Type, contact.Name, contact.Phone, contact.Email, contact.Address,
		contact.TaxNumber, time.Now().UTC(), id, contact.CompanyID)
	if err != nil {
		return translateUnique(err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Archive(ctx context.Context, companyID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contacts SET archived = true, updated_at = $1 WHERE id = $2 AND company_id = $3`,
		time.Now().UTC(), id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (Contact, error) {
	var c Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Type, &c.Name, &c.Phone, &c.Email,
		&c.Address, &c.TaxNumber, &c.Archived, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httpx.ErrDuplicate
	}
	return err
}
