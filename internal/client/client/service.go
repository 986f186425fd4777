package client

import (
	"context"

	"github.com/dmitrijs2005/peerreview/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, wallet, education string, salt []byte, key []byte) error
	GetSalt(ctx context.Context, wallet string) ([]byte, error)
	Login(ctx context.Context, wallet string, key []byte) error
	Ping(ctx context.Context) error
	GetUser(ctx context.Context, wallet string) (*models.User, error)
	UpdateEducation(ctx context.Context, education string) error
	RequestUpload(ctx context.Context) (string, string, error)
	ResolveContent(ctx context.Context, manuscriptID string) (string, error)
	SubmitManuscript(ctx context.Context, contentRef string) (*models.Manuscript, error)
	SubmitReview(ctx context.Context, manuscriptID, decision string) (*models.Manuscript, bool, error)
	GetManuscript(ctx context.Context, id string) (*models.Manuscript, error)
	ListManuscripts(ctx context.Context, author, status string) ([]*models.Manuscript, error)
}
