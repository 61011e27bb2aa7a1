package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/errors"
	"storefront/internal/infrastructure/mysql"
)

const productColumns = `id, name, slug, description, price, comparePrice, images,
		       embroidery, fabric, craftsmanship, careInstructions, deliveryDays,
		       sizeChart, inStock, stockQuantity, createdAt, updatedAt`

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT `+productColumns+` FROM Product WHERE id IN (%s)`,
		strings.Join(placeholders, ", "),
	)

	return r.query(ctx, query, args...)
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Product WHERE id = ?`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return p, nil
}

func (r *MySQLRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Product WHERE slug = ?`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %s not found", slug))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by slug: %w", err)
	}

	return p, nil
}

// ListInStock returns the products shown on the storefront, newest first.
func (r *MySQLRepository) ListInStock(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Product WHERE inStock = 1 ORDER BY createdAt DESC, id DESC`
	return r.query(ctx, query)
}

func (r *MySQLRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Product ORDER BY createdAt DESC, id DESC`
	return r.query(ctx, query)
}

// Create returns a ConflictError when the slug is already taken.
func (r *MySQLRepository) Create(ctx context.Context, p domain.Product) error {
	images, err := encodeImages(p.Images)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO Product (id, name, slug, description, price, comparePrice, images,
		                     embroidery, fabric, craftsmanship, careInstructions, deliveryDays,
		                     sizeChart, inStock, stockQuantity, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.ComparePrice, images,
		p.Embroidery, p.Fabric, p.Craftsmanship, p.CareInstructions, p.DeliveryDays,
		p.SizeChart, p.InStock, p.StockQuantity, p.CreatedAt, p.UpdatedAt,
	)
	if mysql.IsDuplicateKey(err) {
		return errors.NewConflictError(fmt.Sprintf("slug %s already exists", p.Slug))
	}
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

// Update applies the non-nil fields of patch. An empty patch only checks
// that the product exists.
func (r *MySQLRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Slug != nil {
		set("slug", *patch.Slug)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.ComparePrice != nil {
		set("comparePrice", *patch.ComparePrice)
	}
	if patch.Images != nil {
		images, err := encodeImages(*patch.Images)
		if err != nil {
			return err
		}
		set("images", images)
	}
	if patch.Embroidery != nil {
		set("embroidery", *patch.Embroidery)
	}
	if patch.Fabric != nil {
		set("fabric", *patch.Fabric)
	}
	if patch.Craftsmanship != nil {
		set("craftsmanship", *patch.Craftsmanship)
	}
	if patch.CareInstructions != nil {
		set("careInstructions", *patch.CareInstructions)
	}
	if patch.DeliveryDays != nil {
		set("deliveryDays", *patch.DeliveryDays)
	}
	if patch.SizeChart != nil {
		set("sizeChart", *patch.SizeChart)
	}
	if patch.InStock != nil {
		set("inStock", *patch.InStock)
	}
	if patch.StockQuantity != nil {
		set("stockQuantity", *patch.StockQuantity)
	}

	if len(sets) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	query := `UPDATE Product SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if mysql.IsDuplicateKey(err) {
		return errors.NewConflictError(fmt.Sprintf("slug %s already exists", *patch.Slug))
	}
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}

	return nil
}

// Delete removes the product only. Order items keep their productId and
// captured price; their name resolves to empty afterwards.
func (r *MySQLRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Product WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}

	return nil
}

func (r *MySQLRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p            domain.Product
		comparePrice sql.NullInt64
		images       []byte
		embroidery   sql.NullString
		fabric       sql.NullString
		craft        sql.NullString
		care         sql.NullString
		sizeChart    sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &comparePrice, &images,
		&embroidery, &fabric, &craft, &care, &p.DeliveryDays,
		&sizeChart, &p.InStock, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if comparePrice.Valid {
		v := comparePrice.Int64
		p.ComparePrice = &v
	}
	p.Embroidery = nullString(embroidery)
	p.Fabric = nullString(fabric)
	p.Craftsmanship = nullString(craft)
	p.CareInstructions = nullString(care)
	p.SizeChart = nullString(sizeChart)

	p.Images = []string{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, fmt.Errorf("decoding images of product %s: %w", p.ID, err)
		}
	}

	return &p, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func encodeImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("encoding images: %w", err)
	}
	return string(b), nil
}
