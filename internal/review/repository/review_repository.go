package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/errors"
)

const reviewColumns = `id, name, rating, text, approved, createdAt`

type MySQLReviewRepository struct {
	db *sql.DB
}

func NewMySQLReviewRepository(db *sql.DB) *MySQLReviewRepository {
	return &MySQLReviewRepository{db: db}
}

func (r *MySQLReviewRepository) ListApproved(ctx context.Context) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM Reviews WHERE approved = 1 ORDER BY createdAt DESC, id DESC`
	return r.query(ctx, query)
}

func (r *MySQLReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM Reviews ORDER BY createdAt DESC, id DESC`
	return r.query(ctx, query)
}

func (r *MySQLReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM Reviews WHERE id = ?`

	var review domain.Review
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&review.ID, &review.Name, &review.Rating, &review.Text, &review.Approved, &review.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("review with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying review by id: %w", err)
	}

	return &review, nil
}

func (r *MySQLReviewRepository) Create(ctx context.Context, review domain.Review) error {
	query := `
		INSERT INTO Reviews (id, name, rating, text, approved, createdAt)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.Name, review.Rating, review.Text, review.Approved, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting review: %w", err)
	}

	return nil
}

func (r *MySQLReviewRepository) Update(ctx context.Context, id string, patch domain.ReviewPatch) error {
	var (
		sets []string
		args []interface{}
	)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *patch.Rating)
	}
	if patch.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *patch.Text)
	}
	if patch.Approved != nil {
		sets = append(sets, "approved = ?")
		args = append(args, *patch.Approved)
	}

	if len(sets) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	query := `UPDATE Reviews SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("review with id %s not found", id))
	}

	return nil
}

func (r *MySQLReviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("review with id %s not found", id))
	}

	return nil
}

func (r *MySQLReviewRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.Name, &review.Rating, &review.Text, &review.Approved, &review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review rows: %w", err)
	}

	return reviews, nil
}
