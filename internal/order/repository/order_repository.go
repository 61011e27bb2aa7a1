package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/errors"
)

const orderColumns = `id, orderCode, status, fullName, phone, whatsapp, address,
		       city, state, pincode, notes, total, createdAt`

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	query := `
		INSERT INTO Orders (id, orderCode, status, fullName, phone, whatsapp, address,
		                    city, state, pincode, notes, total, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(ctx, query,
		order.ID, order.OrderCode, string(order.Status), order.FullName, order.Phone, order.WhatsApp,
		order.Address, order.City, order.State, order.Pincode, order.Notes, order.Total, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE orderCode = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, code))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", code))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by code: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}

	return nil
}

// List returns order headers newest first. Search is a substring match on
// code, name and phone; case sensitivity follows the column collation.
func (r *MySQLOrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Search != "" {
		like := "%" + escapeLike(filter.Search) + "%"
		conditions = append(conditions, "(orderCode LIKE ? OR fullName LIKE ? OR phone LIKE ?)")
		args = append(args, like, like, like)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(filter.Status))
	}

	query := `SELECT ` + orderColumns + ` FROM Orders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY createdAt DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// StatusTotals aggregates every order by status on each call.
func (r *MySQLOrderRepository) StatusTotals(ctx context.Context) ([]domain.StatusTotal, error) {
	query := `SELECT status, COUNT(*), COALESCE(SUM(total), 0) FROM Orders GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregating orders: %w", err)
	}
	defer rows.Close()

	var totals []domain.StatusTotal
	for rows.Next() {
		var (
			t      domain.StatusTotal
			status string
		)
		if err := rows.Scan(&status, &t.Count, &t.Sum); err != nil {
			return nil, fmt.Errorf("scanning status total: %w", err)
		}
		t.Status = domain.OrderStatus(status)
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status totals: %w", err)
	}

	return totals, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	err := row.Scan(
		&order.ID, &order.OrderCode, &status, &order.FullName, &order.Phone, &order.WhatsApp,
		&order.Address, &order.City, &order.State, &order.Pincode, &order.Notes,
		&order.Total, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	return &order, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
