package manuscripts

import (
	"context"

	"github.com/dmitrijs2005/peerreview/internal/server/models"
)

// Filter narrows List results. Zero values mean "any".
type Filter struct {
	Author string
	Status string
}

type Repository interface {
	// Create persists a new manuscript with its initial status and version 1.
	Create(ctx context.Context, m *models.Manuscript) error

	// Get returns the manuscript with its reviews in recorded order, or
	// common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Manuscript, error)

	// List returns manuscripts matching the filter, newest first.
	List(ctx context.Context, f Filter) ([]*models.Manuscript, error)

	// UpdateStatus applies a compare-and-swap on the stored version: the row
	// is updated only if it still carries expectedVersion, and the version is
	// bumped. A lost race returns common.ErrVersionConflict.
	UpdateStatus(ctx context.Context, id string, status string, expectedVersion int64) error

	// AppendReview stores one (reviewer, decision) pair at position idx.
	// A duplicate reviewer returns common.ErrDuplicateEntry; a duplicate
	// position returns common.ErrVersionConflict.
	AppendReview(ctx context.Context, manuscriptID string, idx int, rev models.Review) error
}
