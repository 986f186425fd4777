package escrows

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
)

// ErrIDCollision reports that the derived escrow ID is already held by a
// different manuscript. The caller resolves it by retrying with the next
// derivation nonce; it is distinct from common.ErrDuplicateEntry, which
// means this manuscript already has an escrow and must not be retried.
var ErrIDCollision = errors.New("escrow id collision")

type Repository interface {
	// Create persists a newly opened escrow. Fails with
	// common.ErrDuplicateEntry if one already exists for the manuscript and
	// with ErrIDCollision if the derived ID belongs to another manuscript.
	Create(ctx context.Context, e *models.Escrow) error

	// GetByManuscript returns the escrow for the manuscript, or
	// common.ErrorNotFound.
	GetByManuscript(ctx context.Context, manuscriptID string) (*models.Escrow, error)

	// Settle marks the escrow settled and zeroes its balance in one atomic
	// step, returning the balance that was held. A second settlement attempt
	// returns common.ErrStateConflict.
	Settle(ctx context.Context, id string) (currency.Units, error)
}
