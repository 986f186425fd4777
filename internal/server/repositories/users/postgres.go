// Package users provides the repository for registered participants.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
)

// PostgresRepository implements user storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create registers a user. A wallet may be registered at most once; a repeat
// registration returns common.ErrDuplicateEntry.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (wallet, education, salt, verifier)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (wallet) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, user.Wallet, user.Education, user.Salt, user.Verifier)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: wallet %s", common.ErrDuplicateEntry, user.Wallet)
	}
	return user, nil
}

// GetByWallet returns the user identified by wallet, or common.ErrorNotFound.
func (r *PostgresRepository) GetByWallet(ctx context.Context, wallet string) (*models.User, error) {
	query := `
		SELECT wallet, education, published_papers, salt, verifier, created_at
		FROM users
		WHERE wallet = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, wallet).Scan(
		&user.Wallet, &user.Education, &user.PublishedPapers, &user.Salt, &user.Verifier, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// UpdateEducation replaces the education field for the wallet's user.
func (r *PostgresRepository) UpdateEducation(ctx context.Context, wallet string, education string) error {
	query := `
		UPDATE users SET education = $2
		WHERE wallet = $1
	`
	res, err := r.db.ExecContext(ctx, query, wallet, education)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// IncrementPublishedPapers bumps the published-paper counter by one.
func (r *PostgresRepository) IncrementPublishedPapers(ctx context.Context, wallet string) error {
	query := `
		UPDATE users SET published_papers = published_papers + 1
		WHERE wallet = $1
	`
	res, err := r.db.ExecContext(ctx, query, wallet)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
