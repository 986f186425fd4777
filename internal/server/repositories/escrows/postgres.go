// Package escrows provides PostgreSQL-backed storage for manuscript escrows.
package escrows

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository implements escrow storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists a newly opened escrow. The insert runs under a savepoint
// so a unique violation does not poison the caller's transaction: without it
// the first failed insert would abort the transaction and a nonce retry
// could never be attempted. A violation of the manuscript_id unique index
// (one live escrow per manuscript) maps to common.ErrDuplicateEntry; a
// primary-key violation means another manuscript holds the derived ID and
// maps to ErrIDCollision, which the caller resolves with the next nonce.
func (r *PostgresRepository) Create(ctx context.Context, e *models.Escrow) error {
	if _, err := r.db.ExecContext(ctx, "SAVEPOINT escrow_create"); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	query := `
		INSERT INTO escrows (id, manuscript_id, authority, balance, nonce, settled)
		VALUES ($1, $2, $3, $4, $5, false)
	`
	if _, err := r.db.ExecContext(ctx, query, e.ID, e.ManuscriptID, e.Authority, uint64(e.Balance), e.Nonce); err != nil {
		if _, rbErr := r.db.ExecContext(ctx, "ROLLBACK TO SAVEPOINT escrow_create"); rbErr != nil {
			return fmt.Errorf("db error: %w", rbErr)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "escrows_pkey" {
				return fmt.Errorf("%w: id %s", ErrIDCollision, e.ID)
			}
			return fmt.Errorf("%w: escrow for manuscript %s", common.ErrDuplicateEntry, e.ManuscriptID)
		}
		return fmt.Errorf("db error: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, "RELEASE SAVEPOINT escrow_create"); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByManuscript returns the escrow for the manuscript.
func (r *PostgresRepository) GetByManuscript(ctx context.Context, manuscriptID string) (*models.Escrow, error) {
	query := `
		SELECT id, manuscript_id, authority, balance, nonce, settled, created_at
		FROM escrows
		WHERE manuscript_id = $1
	`
	e := &models.Escrow{}
	var balance uint64
	err := r.db.QueryRowContext(ctx, query, manuscriptID).Scan(
		&e.ID, &e.ManuscriptID, &e.Authority, &balance, &e.Nonce, &e.Settled, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	e.Balance = currency.Units(balance)
	return e, nil
}

// Settle flips the settled flag and zeroes the balance in a single statement,
// returning the balance that was held. The settled = false guard makes
// settlement exactly-once even when two finalization attempts race: the loser
// blocks on the row lock, then matches zero rows.
func (r *PostgresRepository) Settle(ctx context.Context, id string) (currency.Units, error) {
	query := `
		WITH held AS (
			SELECT balance FROM escrows WHERE id = $1 FOR UPDATE
		)
		UPDATE escrows SET settled = true, balance = 0
		FROM held
		WHERE escrows.id = $1 AND escrows.settled = false
		RETURNING held.balance
	`
	var balance uint64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: escrow %s already settled or missing", common.ErrStateConflict, id)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return currency.Units(balance), nil
}
