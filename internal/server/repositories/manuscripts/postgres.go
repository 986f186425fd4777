// Package manuscripts provides PostgreSQL-backed storage for manuscripts and
// their recorded reviews. Reviews live in a child table keyed by position so
// that the (reviewer, decision) pairs stay ordered and parallel; uniqueness of
// reviewers is enforced by the schema.
package manuscripts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository implements manuscript storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists a new manuscript. The stored version starts at 1.
func (r *PostgresRepository) Create(ctx context.Context, m *models.Manuscript) error {
	query := `
		INSERT INTO manuscripts (id, author, content_ref, status, submission_time, version)
		VALUES ($1, $2, $3, $4, $5, 1)
	`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Author, m.ContentRef, m.Status, m.SubmissionTime)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: manuscript %s", common.ErrDuplicateEntry, m.ID)
		}
		return fmt.Errorf("db error: %w", err)
	}
	m.Version = 1
	return nil
}

// Get returns the manuscript and its reviews in recorded order.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Manuscript, error) {
	query := `
		SELECT id, author, content_ref, status, submission_time, version
		FROM manuscripts
		WHERE id = $1
	`
	m := &models.Manuscript{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Author, &m.ContentRef, &m.Status, &m.SubmissionTime, &m.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if m.Reviews, err = r.selectReviews(ctx, id); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns manuscripts matching the filter, newest first.
func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]*models.Manuscript, error) {
	query := `
		SELECT id, author, content_ref, status, submission_time, version
		FROM manuscripts
		WHERE ($1 = '' OR author = $1) AND ($2 = '' OR status = $2)
		ORDER BY submission_time DESC
	`
	rows, err := r.db.QueryContext(ctx, query, f.Author, f.Status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Manuscript
	for rows.Next() {
		m := &models.Manuscript{}
		if err := rows.Scan(&m.ID, &m.Author, &m.ContentRef, &m.Status, &m.SubmissionTime, &m.Version); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	for _, m := range result {
		if m.Reviews, err = r.selectReviews(ctx, m.ID); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// UpdateStatus applies the status transition with a compare-and-swap on the
// stored version. Zero rows affected means another writer got there first.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string, expectedVersion int64) error {
	query := `
		UPDATE manuscripts SET status = $2, version = version + 1
		WHERE id = $1 AND version = $3
	`
	res, err := r.db.ExecContext(ctx, query, id, status, expectedVersion)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrVersionConflict
	}
	return nil
}

// AppendReview stores one (reviewer, decision) pair at position idx.
func (r *PostgresRepository) AppendReview(ctx context.Context, manuscriptID string, idx int, rev models.Review) error {
	query := `
		INSERT INTO manuscript_reviews (manuscript_id, idx, reviewer, decision)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, manuscriptID, idx, rev.Reviewer, rev.Decision)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "manuscript_reviews_reviewer_key" {
				return fmt.Errorf("%w: reviewer %s", common.ErrDuplicateEntry, rev.Reviewer)
			}
			// two writers raced for the same position
			return common.ErrVersionConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) selectReviews(ctx context.Context, manuscriptID string) ([]models.Review, error) {
	query := `
		SELECT reviewer, decision
		FROM manuscript_reviews
		WHERE manuscript_id = $1
		ORDER BY idx
	`
	rows, err := r.db.QueryContext(ctx, query, manuscriptID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.Reviewer, &rev.Decision); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return reviews, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
