package accounts

import (
	"context"

	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
)

type Repository interface {
	// Get returns the account, or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Account, error)

	// Deposit credits the account, creating it with a zero starting balance
	// if it does not exist yet.
	Deposit(ctx context.Context, id string, amount currency.Units) error

	// Withdraw debits the account. Fails with common.ErrInsufficientFunds if
	// the balance is lower than the amount, without a partial debit.
	Withdraw(ctx context.Context, id string, amount currency.Units) error

	// Transfer moves amount from one account to another. Callers must run it
	// inside a transaction to get atomicity across the two legs.
	Transfer(ctx context.Context, from, to string, amount currency.Units) error
}
