package trading

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/db"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
)

const transactionColumns = `id, company_id, direction, is_return, contact_id, contact_name,
	user_id, user_name, subtotal, total_discount, total_amount, note, created_at`

// StockMovement is one product's signed delta produced by a commit.
type StockMovement struct {
	ProductID int64
	Delta     int64
}

// Repository persists transaction documents. Commit writes the document, its
// items and all stock deltas in a single database transaction; it reports
// product IDs whose stock row no longer exists so the caller can log them.
type Repository interface {
	Commit(ctx context.Context, t Transaction, movements []StockMovement) (missing []int64, err error)
	List(ctx context.Context, companyID int64, filters ListFilters) ([]Transaction, int, error)
	Get(ctx context.Context, companyID int64, id string) (Transaction, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) Commit(ctx context.Context, t Transaction, movements []StockMovement) ([]int64, error) {
	var missing []int64
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO transactions
			(id, company_id, direction, is_return, contact_id, contact_name,
			 user_id, user_name, subtotal, total_discount, total_amount, note, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			t.ID, t.CompanyID, t.Direction, t.IsReturn, t.ContactID, t.ContactName,
			t.UserID, t.UserName, t.Subtotal, t.TotalDiscount, t.TotalAmount, t.Note, t.CreatedAt)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, item := range t.Items {
			batch.Queue(`INSERT INTO transaction_items
				(id, transaction_id, kind, product_id, sku, description, unit,
				 quantity, unit_price, discount, vat_rate, total)
				VALUES ($1, $2, $3, NULLIF($4, 0), $5, $6, $7, $8, $9, $10, $11, $12)`,
				item.ID, item.TransactionID, item.Kind, item.ProductID, item.SKU,
				item.Description, item.Unit, item.Quantity, item.UnitPrice,
				item.Discount, item.VATRate, item.Total)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}

		for _, m := range movements {
			tag, err := tx.Exec(ctx,
				`UPDATE products SET stock = stock + $1, updated_at = now() WHERE id = $2 AND company_id = $3`,
				m.Delta, m.ProductID, t.CompanyID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				missing = append(missing, m.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return missing, nil
}

func (r *repository) List(ctx context.Context, companyID int64, filters ListFilters) ([]Transaction, int, error) {
	where := ` WHERE company_id = $1`
	args := []interface{}{companyID}

	if filters.Direction != "" {
		args = append(args, filters.Direction)
		where += ` AND direction = $` + strconv.Itoa(len(args))
	}
	if filters.ContactID > 0 {
		args = append(args, filters.ContactID)
		where += ` AND contact_id = $` + strconv.Itoa(len(args))
	}
	if !filters.Start.IsZero() {
		args = append(args, filters.Start)
		where += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if !filters.End.IsZero() {
		args = append(args, filters.End)
		where += ` AND created_at < $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions` + where + ` ORDER BY created_at DESC`
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

	var transactions []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}
	return transactions, total, rows.Err()
}

func (r *repository) Get(ctx context.Context, companyID int64, id string) (Transaction, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE company_id = $1 AND id = $2`, companyID, id)
	t, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, httpx.ErrNotFound
	}
	if err != nil {
		return Transaction{}, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, transaction_id, kind, COALESCE(product_id, 0), sku, description,
		unit, quantity, unit_price, discount, vat_rate, total
		FROM transaction_items WHERE transaction_id = $1 ORDER BY id`, id)
	if err != nil {
		return Transaction{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.TransactionID, &item.Kind, &item.ProductID,
			&item.SKU, &item.Description, &item.Unit, &item.Quantity,
			&item.UnitPrice, &item.Discount, &item.VATRate, &item.Total); err != nil {
			return Transaction{}, err
		}
		t.Items = append(t.Items, item)
	}
	return t, rows.Err()
}

func scanTransaction(row pgx.Row) (Transaction, error) {
	var t Transaction
	err := row.Scan(&t.ID, &t.CompanyID, &t.Direction, &t.IsReturn, &t.ContactID, &t.ContactName,
		&t.UserID, &t.UserName, &t.Subtotal, &t.TotalDiscount, &t.TotalAmount, &t.Note, &t.CreatedAt)
	return t, err
}
