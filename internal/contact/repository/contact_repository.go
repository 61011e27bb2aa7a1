package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
)

type MySQLContactRepository struct {
	db *sql.DB
}

func NewMySQLContactRepository(db *sql.DB) *MySQLContactRepository {
	return &MySQLContactRepository{db: db}
}

func (r *MySQLContactRepository) Create(ctx context.Context, submission domain.ContactSubmission) error {
	query := `
		INSERT INTO ContactSubmission (id, name, email, phone, message, createdAt)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		submission.ID, submission.Name, submission.Email, submission.Phone, submission.Message, submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting contact submission: %w", err)
	}

	return nil
}
