// Package accounts provides the PostgreSQL-backed fund ledger. User wallets,
// the treasury, the reward pool and escrow sub-accounts are all rows here,
// and all fund movement goes through Transfer.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
)

// PostgresRepository implements the ledger over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns the account row.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Account, error) {
	query := `
		SELECT id, balance FROM accounts
		WHERE id = $1
	`
	a := &models.Account{}
	var balance uint64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	a.Balance = currency.Units(balance)
	return a, nil
}

// Deposit credits the account, creating the row on first use.
func (r *PostgresRepository) Deposit(ctx context.Context, id string, amount currency.Units) error {
	query := `
		INSERT INTO accounts (id, balance)
		VALUES ($1, $2)
		ON CONFLICT (id)
		DO UPDATE SET balance = accounts.balance + EXCLUDED.balance
	`
	if _, err := r.db.ExecContext(ctx, query, id, uint64(amount)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Withdraw debits the account. The balance guard in the WHERE clause makes
// the debit all-or-nothing: zero rows affected means insufficient funds.
func (r *PostgresRepository) Withdraw(ctx context.Context, id string, amount currency.Units) error {
	query := `
		UPDATE accounts SET balance = balance - $2
		WHERE id = $1 AND balance >= $2
	`
	res, err := r.db.ExecContext(ctx, query, id, uint64(amount))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account %s", common.ErrInsufficientFunds, id)
	}
	return nil
}

// Transfer debits from and credits to. Run inside a transaction; a failed
// debit aborts before any credit happens.
func (r *PostgresRepository) Transfer(ctx context.Context, from, to string, amount currency.Units) error {
	if err := r.Withdraw(ctx, from, amount); err != nil {
		return err
	}
	return r.Deposit(ctx, to, amount)
}
