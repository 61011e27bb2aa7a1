package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"
)

type MySQLAdminRepository struct {
	db *sql.DB
}

func NewMySQLAdminRepository(db *sql.DB) *MySQLAdminRepository {
	return &MySQLAdminRepository{db: db}
}

func (r *MySQLAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT id, email, password, name, createdAt FROM Admins WHERE email = ?`

	var admin domain.Admin
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Name, &admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("admin %s not found", email))
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin by email: %w", err)
	}

	return &admin, nil
}

// Upsert creates the admin or replaces the password hash and name of an
// existing one with the same email.
func (r *MySQLAdminRepository) Upsert(ctx context.Context, admin domain.Admin) error {
	query := `
		INSERT INTO Admins (id, email, password, name, createdAt)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE password = VALUES(password), name = VALUES(name)
	`

	_, err := r.db.ExecContext(ctx, query,
		admin.ID, admin.Email, admin.PasswordHash, admin.Name, admin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting admin: %w", err)
	}

	return nil
}
