package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"storefront/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

// InsertBatch writes all items of one order in a single statement.
func (r *MySQLOrderItemRepository) InsertBatch(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	placeholders := make([]string, len(items))
	args := make([]interface{}, 0, len(items)*6)
	for i, item := range items {
		placeholders[i] = "(?, ?, ?, ?, ?, ?)"
		args = append(args, item.ID, item.OrderID, item.ProductID, item.Size, item.Quantity, item.Price)
	}

	query := `INSERT INTO OrderItems (id, orderId, productId, size, quantity, price) VALUES ` +
		strings.Join(placeholders, ", ")

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting order items: %w", err)
	}

	return nil
}

// FindByOrderIDs loads items grouped by order id, joined with the current
// product name. Items whose product was removed keep an empty name.
func (r *MySQLOrderItemRepository) FindByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	result := make(map[string][]domain.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	placeholders := make([]string, len(orderIDs))
	args := make([]interface{}, len(orderIDs))
	for i, id := range orderIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT oi.id, oi.orderId, oi.productId, COALESCE(p.name, ''), oi.size, oi.quantity, oi.price
		FROM OrderItems oi
		LEFT JOIN Product p ON p.id = oi.productId
		WHERE oi.orderId IN (%s)
		ORDER BY oi.orderId, oi.id`,
		strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Size, &item.Quantity, &item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return result, nil
}
