package users

import (
	"context"

	"github.com/dmitrijs2005/peerreview/internal/server/models"
)

type Repository interface {
	// Create registers a new user. Fails with common.ErrDuplicateEntry if the
	// wallet is already registered.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByWallet returns the user identified by wallet, or common.ErrorNotFound.
	GetByWallet(ctx context.Context, wallet string) (*models.User, error)

	// UpdateEducation replaces the education field of the given user.
	UpdateEducation(ctx context.Context, wallet string, education string) error

	// IncrementPublishedPapers bumps the published-paper counter by one.
	IncrementPublishedPapers(ctx context.Context, wallet string) error
}
