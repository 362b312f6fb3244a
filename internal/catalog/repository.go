package catalog

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

const productColumns = `id, company_id, sku, name, category, unit, stock, critical_threshold,
	purchase_price, exchange_rate, vat_rate, other_expenses, selling_price, archived, created_at, updated_at`

type Repository interface {
	List(ctx context.Context, companyID int64, filters ListFilters) ([]Product, int, error)
	Get(ctx context.Context, companyID, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	CreateBatch(ctx context.Context, products []Product) error
	Update(ctx context.Context, id int64, product Product) error
	Archive(ctx context.Context, companyID, id int64) error
	ListBelowThreshold(ctx context.Context, companyID int64) ([]Product, error)

	ListCategories(ctx context.Context, companyID int64) ([]Category, error)
	AddCategory(ctx context.Context, companyID int64, name string) (Category, error)
	ListUnits(ctx context.Context, companyID int64) ([]Unit, error)
	AddUnit(ctx context.Context, companyID int64, name string) (Unit, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, companyID int64, filters ListFilters) ([]Product, int, error) {
	where := ` WHERE company_id = $1`
	args := []interface{}{companyID}

	if !filters.IncludeArchived {
		where += ` AND NOT archived`
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := strconv.Itoa(len(args))
		where += ` AND (name ILIKE $` + n + ` OR sku ILIKE $` + n + `)`
	}
	if filters.Category != "" {
		args = append(args, filters.Category)
		where += ` AND category = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY ` + sortOrder(filters.SortBy, filters.SortDir)
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

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *repository) Get(ctx context.Context, companyID, id int64) (Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE company_id = $1 AND id = $2`, companyID, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, httpx.ErrNotFound
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	now := time.Now().UTC()
	err := r.db.QueryRow(ctx, `INSERT INTO products
		(company_id, sku, name, category, unit, stock, critical_threshold,
		 purchase_price, exchange_rate, vat_rate, other_expenses, selling_price, archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, false, $13, $13)
		RETURNING id`,
		product.CompanyID, product.SKU, product.Name, product.Category, product.Unit,
		product.Stock, product.CriticalThreshold,
		product.Pricing.PurchasePrice, product.Pricing.ExchangeRate, product.Pricing.VATRate,
		product.Pricing.OtherExpenses, product.SellingPrice, now,
	).Scan(&product.ID)
	if err != nil {
		return Product{}, translateUnique(err)
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	return product, nil
}

func (r *repository) CreateBatch(ctx context.Context, products []Product) error {
	batch := &pgx.Batch{}
	now := time.Now().UTC()
	for _, product := range products {
		batch.Queue(`INSERT INTO products
			(company_id, sku, name, category, unit, stock, critical_threshold,
			 purchase_price, exchange_rate, vat_rate, other_expenses, selling_price, archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, false, $13, $13)`,
			product.CompanyID, product.SKU, product.Name, product.Category, product.Unit,
			product.Stock, product.CriticalThreshold,
			product.Pricing.PurchasePrice, product.Pricing.ExchangeRate, product.Pricing.VATRate,
			product.Pricing.OtherExpenses, product.SellingPrice, now)
	}
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range products {
		if _, err := results.Exec(); err != nil {
			return translateUnique(err)
		}
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id int64, product Product) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET
		sku = $1, name = $2, category = $3, unit = $4, stock = $5, critical_threshold = $6,
		purchase_price = $7, exchange_rate = $8, vat_rate = $9, other_expenses = $10,
		selling_price = $11, updated_at = $12
		WHERE id = $13 AND company_id = $14`,
		product.SKU, product.Name, product.Category, product.Unit,
		product.Stock, product.CriticalThreshold,
		product.Pricing.PurchasePrice, product.Pricing.ExchangeRate, product.Pricing.VATRate,
		product.Pricing.OtherExpenses, product.SellingPrice, time.Now().UTC(),
		id, product.CompanyID)
	if err != nil {
		return translateUnique(err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// Archive soft deletes a product. Rows referenced by historical transactions
// stay resolvable for reporting.
func (r *repository) Archive(ctx context.Context, companyID, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET archived = true, updated_at = NOW() WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) ListBelowThreshold(ctx context.Context, companyID int64) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products
		WHERE company_id = $1 AND NOT archived AND stock <= critical_threshold
		ORDER BY stock ASC`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) ListCategories(ctx context.Context, companyID int64) ([]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, company_id, name FROM product_categories WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repository) AddCategory(ctx context.Context, companyID int64, name string) (Category, error) {
	c := Category{CompanyID: companyID, Name: name}
	err := r.db.QueryRow(ctx, `INSERT INTO product_categories (company_id, name) VALUES ($1, $2) RETURNING id`, companyID, name).Scan(&c.ID)
	if err != nil {
		return Category{}, translateUnique(err)
	}
	return c, nil
}

func (r *repository) ListUnits(ctx context.Context, companyID int64) ([]Unit, error) {
	rows, err := r.db.Query(ctx, `SELECT id, company_id, name FROM product_units WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []Unit
	for rows.Next() {
		var u Unit
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Name); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *repository) AddUnit(ctx context.Context, companyID int64, name string) (Unit, error) {
	u := Unit{CompanyID: companyID, Name: name}
	err := r.db.QueryRow(ctx, `INSERT INTO product_units (company_id, name) VALUES ($1, $2) RETURNING id`, companyID, name).Scan(&u.ID)
	if err != nil {
		return Unit{}, translateUnique(err)
	}
	return u, nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Category, &p.Unit,
		&p.Stock, &p.CriticalThreshold,
		&p.Pricing.PurchasePrice, &p.Pricing.ExchangeRate, &p.Pricing.VATRate,
		&p.Pricing.OtherExpenses, &p.SellingPrice, &p.Archived, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httpx.ErrDuplicate
	}
	return err
}

func sortOrder(sortBy, sortDir string) string {
	dir := "ASC"
	if sortDir == "desc" {
		dir = "DESC"
	}
	switch sortBy {
	case "sku":
		return "sku " + dir
	case "stock":
		return "stock " + dir
	case "selling_price":
		return "selling_price " + dir
	case "created_at":
		return "created_at " + dir
	default:
		return "name " + dir
	}
}
