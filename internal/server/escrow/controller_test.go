package escrow

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(policy RejectionPolicy) (*Controller, *inmemory.Manager) {
	m := inmemory.NewManager()
	m.SetBalance("payer", 2*currency.SubmissionFee)
	return NewController(m, policy), m
}

func TestOpen_MovesFeeIntoEscrow(t *testing.T) {
	c, store := newFixture(RefundOnReject)
	ctx := context.Background()

	e, err := c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.NoError(t, err)
	assert.Equal(t, DeriveID("m1", 0), e.ID)
	assert.Equal(t, "m1", e.ManuscriptID)
	assert.Equal(t, uint8(0), e.Nonce)
	assert.False(t, e.Settled)

	assert.Equal(t, currency.SubmissionFee, store.Balance("payer"))
	assert.Equal(t, currency.SubmissionFee, store.Balance(e.ID))
}

func TestOpen_RejectsWrongFee(t *testing.T) {
	c, _ := newFixture(RefundOnReject)
	_, err := c.Open(context.Background(), nil, "m1", "payer", currency.SubmissionFee-1)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestOpen_DuplicateManuscript(t *testing.T) {
	c, _ := newFixture(RefundOnReject)
	ctx := context.Background()

	_, err := c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.NoError(t, err)
	_, err = c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestOpen_NonceBumpOnIDCollision(t *testing.T) {
	c, store := newFixture(RefundOnReject)
	ctx := context.Background()

	// another manuscript already holds the nonce-0 derivation for m1
	taken := &models.Escrow{ID: DeriveID("m1", 0), ManuscriptID: "other", Authority: DefaultAuthority}
	require.NoError(t, store.Escrows(nil).Create(ctx, taken))

	e, err := c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), e.Nonce)
	assert.Equal(t, DeriveID("m1", 1), e.ID)
	assert.Equal(t, currency.SubmissionFee, store.Balance(e.ID))
}

func TestOpen_InsufficientFunds(t *testing.T) {
	c, store := newFixture(RefundOnReject)
	store.SetBalance("payer", currency.SubmissionFee-1)

	_, err := c.Open(context.Background(), nil, "m1", "payer", currency.SubmissionFee)
	require.ErrorIs(t, err, common.ErrInsufficientFunds)
}

func TestSettle_AcceptedPaysTreasury(t *testing.T) {
	c, store := newFixture(RefundOnReject)
	ctx := context.Background()

	e, err := c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.NoError(t, err)

	m := &models.Manuscript{ID: "m1", Author: "payer", Status: models.StatusAccepted}
	held, err := c.Settle(ctx, nil, m)
	require.NoError(t, err)
	assert.Equal(t, currency.SubmissionFee, held)

	assert.Equal(t, currency.Units(0), store.Balance(e.ID))
	assert.Equal(t, currency.SubmissionFee, store.Balance(models.TreasuryAccount))
}

func TestSettle_RejectedRefundPolicy(t *testing.T) {
	c, store := newFixture(RefundOnReject)
	ctx := context.Background()

	_, err := c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.NoError(t, err)

	m := &models.Manuscript{ID: "m1", Author: "payer", Status: models.StatusRejected}
	_, err = c.Settle(ctx, nil, m)
	require.NoError(t, err)

	assert.Equal(t, 2*currency.SubmissionFee, store.Balance("payer"))
	assert.Equal(t, currency.Units(0), store.Balance(models.TreasuryAccount))
}

func TestSettle_RejectedForfeitPolicy(t *testing.T) {
	c, store := newFixture(ForfeitOnReject)
	ctx := context.Background()

	_, err := c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.NoError(t, err)

	m := &models.Manuscript{ID: "m1", Author: "payer", Status: models.StatusRejected}
	_, err = c.Settle(ctx, nil, m)
	require.NoError(t, err)

	assert.Equal(t, currency.SubmissionFee, store.Balance("payer"))
	assert.Equal(t, currency.SubmissionFee, store.Balance(models.TreasuryAccount))
}

func TestSettle_RequiresTerminalState(t *testing.T) {
	c, _ := newFixture(RefundOnReject)
	ctx := context.Background()

	_, err := c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.NoError(t, err)

	for _, status := range []string{models.StatusSubmitted, models.StatusUnderReview} {
		m := &models.Manuscript{ID: "m1", Author: "payer", Status: status}
		_, err := c.Settle(ctx, nil, m)
		require.ErrorIs(t, err, common.ErrStateConflict, "status %s", status)
	}
}

func TestSettle_ExactlyOnce(t *testing.T) {
	c, store := newFixture(RefundOnReject)
	ctx := context.Background()

	_, err := c.Open(ctx, nil, "m1", "payer", currency.SubmissionFee)
	require.NoError(t, err)

	m := &models.Manuscript{ID: "m1", Author: "payer", Status: models.StatusAccepted}
	_, err = c.Settle(ctx, nil, m)
	require.NoError(t, err)

	_, err = c.Settle(ctx, nil, m)
	require.ErrorIs(t, err, common.ErrStateConflict)

	// the second attempt must not move money again
	assert.Equal(t, currency.SubmissionFee, store.Balance(models.TreasuryAccount))
}

func TestSettle_NoEscrow(t *testing.T) {
	c, _ := newFixture(RefundOnReject)
	m := &models.Manuscript{ID: "ghost", Author: "payer", Status: models.StatusAccepted}
	_, err := c.Settle(context.Background(), nil, m)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
