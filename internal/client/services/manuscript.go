package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/peerreview/internal/client/client"
	"github.com/dmitrijs2005/peerreview/internal/client/models"
	"github.com/dmitrijs2005/peerreview/internal/filex"
	"github.com/dmitrijs2005/peerreview/internal/netx"
)

// downloadDirName is created under the working directory on the first download.
const downloadDirName = "downloads"

// ManuscriptService exposes the manuscript workflow to the CLI: submitting a
// paper (upload body, then register the submission), reviewing, and browsing.
type ManuscriptService interface {
	Submit(ctx context.Context, path string) (*models.Manuscript, error)
	Review(ctx context.Context, manuscriptID, decision string) (*models.Manuscript, bool, error)
	Get(ctx context.Context, id string) (*models.Manuscript, error)
	List(ctx context.Context, author, status string) ([]*models.Manuscript, error)
	ContentURL(ctx context.Context, manuscriptID string) (string, error)
	Download(ctx context.Context, manuscriptID string) (string, error)
	Profile(ctx context.Context, wallet string) (*models.User, error)
	UpdateEducation(ctx context.Context, education string) error
}

type manuscriptService struct {
	client client.Client
}

// NewManuscriptService constructs a ManuscriptService bound to the given API client.
func NewManuscriptService(client client.Client) ManuscriptService {
	return &manuscriptService{client: client}
}

// uploadFn and downloadFn are test seams for the presigned transfers.
var (
	uploadFn   = netx.UploadToS3PresignedURL
	downloadFn = netx.DownloadFromPresignedURL
)

// Submit reads the manuscript body from path, uploads it to the presigned URL
// issued by the server, and then submits the resulting content reference.
// The submission fee is escrowed server-side at this point.
func (s *manuscriptService) Submit(ctx context.Context, path string) (*models.Manuscript, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manuscript error: %w", err)
	}

	contentRef, url, err := s.client.RequestUpload(ctx)
	if err != nil {
		return nil, fmt.Errorf("request upload error: %w", err)
	}

	if err := uploadFn(url, body); err != nil {
		return nil, fmt.Errorf("upload error: %w", err)
	}

	m, err := s.client.SubmitManuscript(ctx, contentRef)
	if err != nil {
		return nil, fmt.Errorf("submit error: %w", err)
	}

	return m, nil
}

// Review records a decision on a manuscript. The second return value reports
// whether reviewer payouts only partially succeeded after finalization.
func (s *manuscriptService) Review(ctx context.Context, manuscriptID, decision string) (*models.Manuscript, bool, error) {
	return s.client.SubmitReview(ctx, manuscriptID, decision)
}

func (s *manuscriptService) Get(ctx context.Context, id string) (*models.Manuscript, error) {
	return s.client.GetManuscript(ctx, id)
}

func (s *manuscriptService) List(ctx context.Context, author, status string) ([]*models.Manuscript, error) {
	return s.client.ListManuscripts(ctx, author, status)
}

func (s *manuscriptService) ContentURL(ctx context.Context, manuscriptID string) (string, error) {
	return s.client.ResolveContent(ctx, manuscriptID)
}

// Download fetches the manuscript body through a presigned URL and stores it
// under the downloads directory, named by manuscript ID. It returns the path
// of the written file.
func (s *manuscriptService) Download(ctx context.Context, manuscriptID string) (string, error) {
	url, err := s.client.ResolveContent(ctx, manuscriptID)
	if err != nil {
		return "", fmt.Errorf("resolve content error: %w", err)
	}

	body, err := downloadFn(url)
	if err != nil {
		return "", fmt.Errorf("download error: %w", err)
	}

	dir, err := filex.EnsureSubDir(downloadDirName)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, manuscriptID+".pdf")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return "", fmt.Errorf("write manuscript error: %w", err)
	}
	return path, nil
}

func (s *manuscriptService) Profile(ctx context.Context, wallet string) (*models.User, error) {
	return s.client.GetUser(ctx, wallet)
}

func (s *manuscriptService) UpdateEducation(ctx context.Context, education string) error {
	return s.client.UpdateEducation(ctx, education)
}
