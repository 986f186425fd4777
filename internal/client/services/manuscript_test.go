package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/peerreview/internal/client/models"
	"github.com/stretchr/testify/require"
)

func writeTempManuscript(t *testing.T, body []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.pdf")
	require.NoError(t, os.WriteFile(path, body, 0o600))
	return path
}

func TestSubmit_UploadsThenSubmitsRef(t *testing.T) {
	f := &fakeClient{
		uploadRef:  "manuscripts/2026/01/w1/abc",
		uploadURL:  "http://put",
		submitResp: &models.Manuscript{ID: "m1", Status: "Submitted"},
	}
	s := NewManuscriptService(f)

	var gotURL string
	var gotBody []byte
	orig := uploadFn
	uploadFn = func(url string, file []byte) error {
		gotURL, gotBody = url, file
		return nil
	}
	defer func() { uploadFn = orig }()

	path := writeTempManuscript(t, []byte("paper body"))
	m, err := s.Submit(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "m1", m.ID)
	require.Equal(t, "http://put", gotURL)
	require.Equal(t, []byte("paper body"), gotBody)
	require.Equal(t, "manuscripts/2026/01/w1/abc", f.submitted)
}

func TestSubmit_AbortsOnUploadFailure(t *testing.T) {
	f := &fakeClient{uploadRef: "ref", uploadURL: "http://put"}
	s := NewManuscriptService(f)

	orig := uploadFn
	uploadFn = func(url string, file []byte) error { return errors.New("503") }
	defer func() { uploadFn = orig }()

	path := writeTempManuscript(t, []byte("x"))
	_, err := s.Submit(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "upload error")
	require.Empty(t, f.submitted, "manuscript must not be submitted if the body upload failed")
}

func TestSubmit_MissingFile(t *testing.T) {
	s := NewManuscriptService(&fakeClient{})
	_, err := s.Submit(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read manuscript error")
}

func TestReview_PassesThrough(t *testing.T) {
	f := &fakeClient{
		reviewResp:    &models.Manuscript{ID: "m1", Status: "Accepted"},
		reviewPartial: true,
	}
	s := NewManuscriptService(f)

	m, partial, err := s.Review(context.Background(), "m1", "Accept")
	require.NoError(t, err)
	require.True(t, partial)
	require.Equal(t, "Accepted", m.Status)
}

func TestDownload_SavesBody(t *testing.T) {
	t.Chdir(t.TempDir())

	f := &fakeClient{contentURL: "http://get"}
	s := NewManuscriptService(f)

	orig := downloadFn
	downloadFn = func(url string) ([]byte, error) {
		require.Equal(t, "http://get", url)
		return []byte("paper body"), nil
	}
	defer func() { downloadFn = orig }()

	path, err := s.Download(context.Background(), "m1")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("downloads", "m1.pdf"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("paper body"), body)
}

func TestDownload_ResolveFails(t *testing.T) {
	f := &fakeClient{contentErr: errors.New("not found")}
	s := NewManuscriptService(f)

	_, err := s.Download(context.Background(), "m1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "resolve content error")
}

func TestUpdateEducation_PassesValue(t *testing.T) {
	f := &fakeClient{}
	s := NewManuscriptService(f)
	require.NoError(t, s.UpdateEducation(context.Background(), "MSc"))
	require.Equal(t, "MSc", f.education)
}
