package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// MySQLContentRepository stores editable storefront copy as key/value rows.
type MySQLContentRepository struct {
	db *sql.DB
}

func NewMySQLContentRepository(db *sql.DB) *MySQLContentRepository {
	return &MySQLContentRepository{db: db}
}

// FindByKeys returns the stored values for keys; absent keys are simply
// missing from the map.
func (r *MySQLContentRepository) FindByKeys(ctx context.Context, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	placeholders := make([]string, len(keys))
	args := make([]interface{}, len(keys))
	for i, k := range keys {
		placeholders[i] = "?"
		args[i] = k
	}

	query := fmt.Sprintf(`SELECT contentKey, content FROM SiteContent WHERE contentKey IN (%s)`,
		strings.Join(placeholders, ", "),
	)

	return r.query(ctx, query, args...)
}

func (r *MySQLContentRepository) FindAll(ctx context.Context) (map[string]string, error) {
	return r.query(ctx, `SELECT contentKey, content FROM SiteContent`)
}

func (r *MySQLContentRepository) Upsert(ctx context.Context, key, content string) error {
	query := `
		INSERT INTO SiteContent (contentKey, content)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE content = VALUES(content)
	`

	if _, err := r.db.ExecContext(ctx, query, key, content); err != nil {
		return fmt.Errorf("upserting site content %s: %w", key, err)
	}

	return nil
}

func (r *MySQLContentRepository) query(ctx context.Context, query string, args ...interface{}) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying site content: %w", err)
	}
	defer rows.Close()

	content := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning site content row: %w", err)
		}
		content[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating site content rows: %w", err)
	}

	return content, nil
}
