package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/server/auth"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTSecret = []byte("test-secret")

func newUserFixture(t *testing.T) (*UserService, *inmemory.Manager) {
	t.Helper()
	m := inmemory.NewManager()
	s := &UserService{
		repomanager:                  m,
		jwtSecret:                    testJWTSecret,
		accessTokenValidityDuration:  15 * time.Minute,
		refreshTokenValidityDuration: 24 * time.Hour,
		runTx:                        m.RunSerialized,
	}
	return s, m
}

func registerOne(t *testing.T, s *UserService, wallet string, verifier []byte) {
	t.Helper()
	_, err := s.Register(context.Background(), wallet, "PhD", []byte("salt-16-bytes-xx"), verifier)
	require.NoError(t, err)
}

func TestRegister(t *testing.T) {
	s, store := newUserFixture(t)
	ctx := context.Background()

	u, err := s.Register(ctx, "w1", "MSc", []byte("salt"), []byte("verifier"))
	require.NoError(t, err)
	assert.Equal(t, "w1", u.Wallet)
	assert.Equal(t, "MSc", u.Education)
	assert.Equal(t, uint8(0), u.PublishedPapers)

	stored, err := store.Users(nil).GetByWallet(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, []byte("verifier"), stored.Verifier)
}

func TestRegister_Validation(t *testing.T) {
	s, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "", "", []byte("s"), []byte("v"))
	require.ErrorIs(t, err, common.ErrInvalidInput)

	long := make([]byte, models.MaxEducationLen+1)
	for i := range long {
		long[i] = 'e'
	}
	_, err = s.Register(ctx, "w1", string(long), []byte("s"), []byte("v"))
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRegister_DuplicateWallet(t *testing.T) {
	s, _ := newUserFixture(t)
	registerOne(t, s, "w1", []byte("v"))

	_, err := s.Register(context.Background(), "w1", "", []byte("s2"), []byte("v2"))
	require.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestGetSalt(t *testing.T) {
	s, _ := newUserFixture(t)
	registerOne(t, s, "w1", []byte("v"))

	salt, err := s.GetSalt(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, []byte("salt-16-bytes-xx"), salt)
}

func TestGetSalt_UnknownWalletGetsRandomSalt(t *testing.T) {
	s, _ := newUserFixture(t)

	// an absent wallet must not be distinguishable from a present one
	s1, err := s.GetSalt(context.Background(), "ghost")
	require.NoError(t, err)
	require.Len(t, s1, 32)

	s2, err := s.GetSalt(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestLogin(t *testing.T) {
	s, _ := newUserFixture(t)
	registerOne(t, s, "w1", []byte("correct-verifier"))

	pair, err := s.Login(context.Background(), "w1", []byte("correct-verifier"))
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	wallet, err := auth.GetWalletFromToken(pair.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "w1", wallet)
}

func TestLogin_WrongVerifier(t *testing.T) {
	s, _ := newUserFixture(t)
	registerOne(t, s, "w1", []byte("correct-verifier"))

	_, err := s.Login(context.Background(), "w1", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownWallet(t *testing.T) {
	s, _ := newUserFixture(t)
	_, err := s.Login(context.Background(), "ghost", []byte("v"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_Rotates(t *testing.T) {
	s, _ := newUserFixture(t)
	registerOne(t, s, "w1", []byte("v"))
	ctx := context.Background()

	pair, err := s.Login(ctx, "w1", []byte("v"))
	require.NoError(t, err)

	next, err := s.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, next.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// the old token is consumed by the rotation
	_, err = s.RefreshToken(ctx, pair.RefreshToken)
	require.Error(t, err)

	// the new one keeps working
	_, err = s.RefreshToken(ctx, next.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshToken_Expired(t *testing.T) {
	s, store := newUserFixture(t)
	registerOne(t, s, "w1", []byte("v"))
	ctx := context.Background()

	require.NoError(t, store.RefreshTokens(nil).Create(ctx, "w1", "stale-token", -time.Minute))

	_, err := s.RefreshToken(ctx, "stale-token")
	require.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestUpdateEducation(t *testing.T) {
	s, store := newUserFixture(t)
	registerOne(t, s, "w1", []byte("v"))
	ctx := context.Background()

	require.NoError(t, s.UpdateEducation(ctx, "w1", "Postdoc"))

	u, err := store.Users(nil).GetByWallet(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Postdoc", u.Education)
}

func TestUpdateEducation_TooLong(t *testing.T) {
	s, _ := newUserFixture(t)
	registerOne(t, s, "w1", []byte("v"))

	long := make([]byte, models.MaxEducationLen+1)
	for i := range long {
		long[i] = 'e'
	}
	err := s.UpdateEducation(context.Background(), "w1", string(long))
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestGet(t *testing.T) {
	s, _ := newUserFixture(t)
	registerOne(t, s, "w1", []byte("v"))

	u, err := s.Get(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", u.Wallet)

	_, err = s.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
