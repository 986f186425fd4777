package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/logging"
	"github.com/dmitrijs2005/peerreview/internal/server/escrow"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/inmemory"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/manuscripts"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

const (
	author    = "author-1"
	reviewer1 = "reviewer-1"
	reviewer2 = "reviewer-2"
	reviewer3 = "reviewer-3"
)

// newManuscriptFixture builds a service over the in-memory store with the
// author, three reviewers, a funded author wallet and a funded reward pool.
func newManuscriptFixture(t *testing.T, policy escrow.RejectionPolicy) (*ManuscriptService, *inmemory.Manager) {
	t.Helper()

	m := inmemory.NewManager()
	ctx := context.Background()

	for _, w := range []string{author, reviewer1, reviewer2, reviewer3, "reviewer-4", "reviewer-5"} {
		_, err := m.Users(nil).Create(ctx, &models.User{Wallet: w})
		require.NoError(t, err)
	}

	m.SetBalance(author, 2*currency.SubmissionFee)
	m.SetBalance(models.RewardPoolAccount, 10*currency.ReviewReward)

	s := &ManuscriptService{
		repomanager: m,
		escrow:      escrow.NewController(m, policy),
		logger:      nopLogger{},
		runTx:       m.RunSerialized,
	}
	return s, m
}

func submitOne(t *testing.T, s *ManuscriptService) *models.Manuscript {
	t.Helper()
	m, err := s.Submit(context.Background(), author, "papers/2026/test.pdf")
	require.NoError(t, err)
	return m
}

func TestSubmit_EscrowsFee(t *testing.T) {
	s, store := newManuscriptFixture(t, escrow.RefundOnReject)

	m := submitOne(t, s)
	require.Equal(t, models.StatusSubmitted, m.Status)
	require.Equal(t, author, m.Author)

	// the fee left the author wallet and sits in the escrow sub-account
	require.Equal(t, currency.SubmissionFee, store.Balance(author))
	escrowID := escrow.DeriveID(m.ID, 0)
	require.Equal(t, currency.SubmissionFee, store.Balance(escrowID))

	e, err := store.Escrows(nil).GetByManuscript(context.Background(), m.ID)
	require.NoError(t, err)
	require.False(t, e.Settled)
	require.Equal(t, currency.SubmissionFee, e.Balance)
}

func TestSubmit_InsufficientFunds(t *testing.T) {
	s, store := newManuscriptFixture(t, escrow.RefundOnReject)
	store.SetBalance(author, currency.SubmissionFee-1)

	_, err := s.Submit(context.Background(), author, "papers/2026/test.pdf")
	require.ErrorIs(t, err, common.ErrInsufficientFunds)

	// no money moved
	require.Equal(t, currency.SubmissionFee-1, store.Balance(author))

	// and no partial manuscript record survives the rollback
	all, err := s.List(context.Background(), manuscripts.Filter{})
	require.NoError(t, err)
	require.Empty(t, all, "no manuscript record may persist after a failed submission")
}

func TestSubmit_UnknownAuthor(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	_, err := s.Submit(context.Background(), "nobody", "papers/x.pdf")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestSubmit_ContentRefValidation(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)

	_, err := s.Submit(context.Background(), author, "")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	long := make([]byte, models.MaxContentRefLen+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = s.Submit(context.Background(), author, string(long))
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestReview_FirstDecisionMovesToUnderReview(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)

	got, err := s.Review(context.Background(), m.ID, reviewer1, models.DecisionAccept)
	require.NoError(t, err)
	require.Equal(t, models.StatusUnderReview, got.Status)
	require.Len(t, got.Reviews, 1)
	require.Equal(t, reviewer1, got.Reviews[0].Reviewer)
}

func TestReview_MajorityAcceptFinalizes(t *testing.T) {
	s, store := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)
	ctx := context.Background()

	_, err := s.Review(ctx, m.ID, reviewer1, models.DecisionAccept)
	require.NoError(t, err)
	_, err = s.Review(ctx, m.ID, reviewer2, models.DecisionAccept)
	require.NoError(t, err)
	got, err := s.Review(ctx, m.ID, reviewer3, models.DecisionReject)
	require.NoError(t, err)

	require.Equal(t, models.StatusAccepted, got.Status)
	require.Len(t, got.Reviews, 3)

	// fee forfeited to the treasury, escrow drained exactly once
	require.Equal(t, currency.SubmissionFee, store.Balance(models.TreasuryAccount))
	require.Equal(t, currency.Units(0), store.Balance(escrow.DeriveID(m.ID, 0)))

	e, err := store.Escrows(nil).GetByManuscript(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, e.Settled)
	require.Equal(t, currency.Units(0), e.Balance)

	// each panelist earned the review reward
	for _, w := range []string{reviewer1, reviewer2, reviewer3} {
		require.Equal(t, currency.ReviewReward, store.Balance(w), "reviewer %s", w)
	}

	// acceptance bumps the author's publication count
	u, err := store.Users(nil).GetByWallet(ctx, author)
	require.NoError(t, err)
	require.Equal(t, uint8(1), u.PublishedPapers)
}

func TestReview_MajorityRejectRefundsAuthor(t *testing.T) {
	s, store := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)
	ctx := context.Background()

	balanceAfterSubmit := store.Balance(author)

	_, err := s.Review(ctx, m.ID, reviewer1, models.DecisionReject)
	require.NoError(t, err)
	_, err = s.Review(ctx, m.ID, reviewer2, models.DecisionAccept)
	require.NoError(t, err)
	got, err := s.Review(ctx, m.ID, reviewer3, models.DecisionReject)
	require.NoError(t, err)

	require.Equal(t, models.StatusRejected, got.Status)

	// refund policy: the fee returns to the author, treasury gets nothing
	require.Equal(t, balanceAfterSubmit+currency.SubmissionFee, store.Balance(author))
	require.Equal(t, currency.Units(0), store.Balance(models.TreasuryAccount))

	// rejection must not bump the publication count
	u, err := store.Users(nil).GetByWallet(ctx, author)
	require.NoError(t, err)
	require.Equal(t, uint8(0), u.PublishedPapers)
}

func TestReview_RejectForfeitPolicy(t *testing.T) {
	s, store := newManuscriptFixture(t, escrow.ForfeitOnReject)
	m := submitOne(t, s)
	ctx := context.Background()

	balanceAfterSubmit := store.Balance(author)

	for i, r := range []string{reviewer1, reviewer2, reviewer3} {
		_, err := s.Review(ctx, m.ID, r, models.DecisionReject)
		require.NoError(t, err, "review %d", i)
	}

	require.Equal(t, balanceAfterSubmit, store.Balance(author))
	require.Equal(t, currency.SubmissionFee, store.Balance(models.TreasuryAccount))
}

func TestReview_AfterFinalizeRejected(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)
	ctx := context.Background()

	for _, r := range []string{reviewer1, reviewer2, reviewer3} {
		_, err := s.Review(ctx, m.ID, r, models.DecisionAccept)
		require.NoError(t, err)
	}

	_, err := s.Review(ctx, m.ID, "reviewer-4", models.DecisionAccept)
	require.ErrorIs(t, err, common.ErrStateConflict)
}

func TestReview_DuplicateReviewer(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)
	ctx := context.Background()

	_, err := s.Review(ctx, m.ID, reviewer1, models.DecisionAccept)
	require.NoError(t, err)
	_, err = s.Review(ctx, m.ID, reviewer1, models.DecisionReject)
	require.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestReview_InvalidDecision(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)

	_, err := s.Review(context.Background(), m.ID, reviewer1, "Maybe")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestReview_UnknownManuscript(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	_, err := s.Review(context.Background(), "no-such-id", reviewer1, models.DecisionAccept)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestReview_UnknownReviewer(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)
	_, err := s.Review(context.Background(), m.ID, "stranger", models.DecisionAccept)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

// Five reviewers race on the same manuscript. Exactly three decisions must be
// recorded, the verdict computed once, the escrow settled once, and the losers
// must observe the terminal state.
func TestReview_ConcurrentReviewersFinalizeOnce(t *testing.T) {
	s, store := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)
	ctx := context.Background()

	reviewers := []string{reviewer1, reviewer2, reviewer3, "reviewer-4", "reviewer-5"}

	var wg sync.WaitGroup
	errs := make([]error, len(reviewers))
	for i, r := range reviewers {
		wg.Add(1)
		go func(i int, r string) {
			defer wg.Done()
			_, errs[i] = s.Review(ctx, m.ID, r, models.DecisionAccept)
		}(i, r)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrStateConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 3, ok, "exactly quorum many reviews must succeed")
	require.Equal(t, 2, conflicts)

	got, err := s.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusAccepted, got.Status)
	require.Len(t, got.Reviews, 3)

	// settlement happened exactly once
	require.Equal(t, currency.SubmissionFee, store.Balance(models.TreasuryAccount))
	require.Equal(t, currency.Units(0), store.Balance(escrow.DeriveID(m.ID, 0)))

	// exactly the three recorded panelists were rewarded
	var rewarded int
	for _, r := range reviewers {
		if store.Balance(r) == currency.ReviewReward {
			rewarded++
		} else {
			require.Equal(t, currency.Units(0), store.Balance(r))
		}
	}
	require.Equal(t, 3, rewarded)
}

// A review attempt that loses the version race replays the whole
// read-validate-write sequence and succeeds on the second pass.
func TestReview_RetriesAfterVersionConflict(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)

	inner := s.runTx
	var calls int
	s.runTx = func(ctx context.Context, fn func(ctx context.Context, db dbx.DBTX) error) error {
		calls++
		if calls == 1 {
			return common.ErrVersionConflict
		}
		return inner(ctx, fn)
	}

	got, err := s.Review(context.Background(), m.ID, reviewer1, models.DecisionAccept)
	require.NoError(t, err)
	require.Equal(t, 2, calls, "the lost race must be replayed exactly once")
	require.Equal(t, models.StatusUnderReview, got.Status)
	require.Len(t, got.Reviews, 1)
	require.Equal(t, reviewer1, got.Reviews[0].Reviewer)
}

func TestReview_GivesUpAfterRepeatedConflicts(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)

	var calls int
	s.runTx = func(ctx context.Context, fn func(ctx context.Context, db dbx.DBTX) error) error {
		calls++
		return common.ErrVersionConflict
	}

	_, err := s.Review(context.Background(), m.ID, reviewer1, models.DecisionAccept)
	require.ErrorIs(t, err, common.ErrVersionConflict)
	require.Equal(t, maxReviewRetries+1, calls)
}

func TestReview_PartialPayoutKeepsVerdict(t *testing.T) {
	s, store := newManuscriptFixture(t, escrow.RefundOnReject)
	m := submitOne(t, s)
	ctx := context.Background()

	// pool covers only two of the three rewards
	store.SetBalance(models.RewardPoolAccount, 2*currency.ReviewReward)

	_, err := s.Review(ctx, m.ID, reviewer1, models.DecisionAccept)
	require.NoError(t, err)
	_, err = s.Review(ctx, m.ID, reviewer2, models.DecisionAccept)
	require.NoError(t, err)

	got, err := s.Review(ctx, m.ID, reviewer3, models.DecisionAccept)
	require.ErrorIs(t, err, common.ErrPartialPayout)
	require.NotNil(t, got, "the finalized manuscript must be returned alongside the payout error")
	require.Equal(t, models.StatusAccepted, got.Status)

	// the verdict and settlement stand even though a payment failed
	require.Equal(t, currency.SubmissionFee, store.Balance(models.TreasuryAccount))
	require.Equal(t, currency.Units(0), store.Balance(models.RewardPoolAccount))
}

func TestGetAndList(t *testing.T) {
	s, _ := newManuscriptFixture(t, escrow.RefundOnReject)
	ctx := context.Background()

	m1 := submitOne(t, s)
	m2 := submitOne(t, s)
	_, err := s.Review(ctx, m2.ID, reviewer1, models.DecisionAccept)
	require.NoError(t, err)

	got, err := s.Get(ctx, m1.ID)
	require.NoError(t, err)
	require.Equal(t, m1.ID, got.ID)

	all, err := s.List(ctx, manuscripts.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	underReview, err := s.List(ctx, manuscripts.Filter{Status: models.StatusUnderReview})
	require.NoError(t, err)
	require.Len(t, underReview, 1)
	require.Equal(t, m2.ID, underReview[0].ID)
}
