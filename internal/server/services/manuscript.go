package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/logging"
	"github.com/dmitrijs2005/peerreview/internal/server/config"
	"github.com/dmitrijs2005/peerreview/internal/server/escrow"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/manuscripts"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/peerreview/internal/server/review"
	"github.com/google/uuid"
)

// maxReviewRetries bounds how often a review call is replayed after losing a
// version race to a concurrent reviewer.
const maxReviewRetries = 5

// txRunner executes fn with transactional semantics: all repository calls made
// through the passed DBTX commit or roll back together.
type txRunner func(ctx context.Context, fn func(ctx context.Context, db dbx.DBTX) error) error

// ManuscriptService drives a manuscript through
// Submitted -> UnderReview -> {Accepted | Rejected}. Terminal states have no
// outbound transitions. Every mutation runs inside one transaction with a
// compare-and-swap on the manuscript version, so concurrent review calls
// serialize and finalization happens exactly once.
type ManuscriptService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	escrow      *escrow.Controller
	logger      logging.Logger
	runTx       txRunner
}

// NewManuscriptService constructs the service with PostgreSQL transaction
// semantics. Tests may substitute runTx to supply their own serialization.
func NewManuscriptService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *ManuscriptService {
	s := &ManuscriptService{
		db:          db,
		repomanager: m,
		escrow:      escrow.NewController(m, cfg.RejectionPolicy),
		logger:      logger.With("module", "manuscripts"),
	}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
		return dbx.WithTx(ctx, db, nil, fn)
	}
	return s
}

// Submit creates a manuscript in the Submitted state and locks the submission
// fee in a freshly derived escrow, all in one transaction: if the author
// cannot cover the fee, no manuscript record persists.
func (s *ManuscriptService) Submit(ctx context.Context, author, contentRef string) (*models.Manuscript, error) {
	if contentRef == "" || len(contentRef) > models.MaxContentRefLen {
		return nil, fmt.Errorf("%w: content reference must be 1..%d characters", common.ErrInvalidInput, models.MaxContentRefLen)
	}
	if _, err := s.repomanager.Users(s.db).GetByWallet(ctx, author); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	m := &models.Manuscript{
		ID:             uuid.NewString(),
		Author:         author,
		ContentRef:     contentRef,
		Status:         models.StatusSubmitted,
		SubmissionTime: time.Now(),
	}

	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Manuscripts(tx).Create(ctx, m); err != nil {
			return err
		}
		_, err := s.escrow.Open(ctx, tx, m.ID, author, currency.SubmissionFee)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "manuscript submitted", "id", m.ID, "author", author)
	return m, nil
}

// Review records one reviewer decision. The first decision moves the
// manuscript to UnderReview; the decision that reaches quorum computes the
// verdict and finalizes in the same transaction. Reviewer rewards are paid
// after the verdict commits; payment failures surface as
// common.ErrPartialPayout next to the finalized manuscript and are never
// rolled back into the verdict.
func (s *ManuscriptService) Review(ctx context.Context, manuscriptID, reviewer, decision string) (*models.Manuscript, error) {
	if _, err := s.repomanager.Users(s.db).GetByWallet(ctx, reviewer); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	var (
		result    *models.Manuscript
		finalized bool
	)

	for attempt := 0; ; attempt++ {
		err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			repo := s.repomanager.Manuscripts(tx)

			m, err := repo.Get(ctx, manuscriptID)
			if err != nil {
				return err
			}
			readVersion := m.Version
			idx := len(m.Reviews)

			if err := review.RecordDecision(m, reviewer, decision); err != nil {
				return err
			}

			finalized = false
			if review.QuorumReached(m) {
				verdict, err := review.Verdict(m)
				if err != nil {
					return err
				}
				m.Status = verdict
				finalized = true
			}

			// the CAS below is the serialization point: a racing reviewer got
			// here first when zero rows match, and the whole attempt replays
			if err := repo.UpdateStatus(ctx, m.ID, m.Status, readVersion); err != nil {
				return err
			}
			if err := repo.AppendReview(ctx, m.ID, idx, m.Reviews[idx]); err != nil {
				return err
			}

			if finalized {
				if m.Status == models.StatusAccepted {
					if err := s.repomanager.Users(tx).IncrementPublishedPapers(ctx, m.Author); err != nil {
						return err
					}
				}
				if _, err := s.escrow.Settle(ctx, tx, m); err != nil {
					return err
				}
			}

			m.Version = readVersion + 1
			result = m
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, common.ErrVersionConflict) && attempt < maxReviewRetries {
			continue
		}
		return nil, err
	}

	if finalized {
		s.logger.Info(ctx, "manuscript finalized", "id", result.ID, "status", result.Status)
		if err := s.payRewards(ctx, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Get returns the manuscript with its recorded reviews.
func (s *ManuscriptService) Get(ctx context.Context, id string) (*models.Manuscript, error) {
	return s.repomanager.Manuscripts(s.db).Get(ctx, id)
}

// List returns manuscripts matching the filter.
func (s *ManuscriptService) List(ctx context.Context, f manuscripts.Filter) ([]*models.Manuscript, error) {
	return s.repomanager.Manuscripts(s.db).List(ctx, f)
}

// payRewards pays each recorded reviewer from the reward pool, one transfer
// per reviewer so a drained pool affects only the remaining payments. Unpaid
// reviewers are reported through common.ErrPartialPayout; an external process
// may retry them.
func (s *ManuscriptService) payRewards(ctx context.Context, m *models.Manuscript) error {
	var unpaid []string
	for _, r := range m.Reviews {
		reviewer := r.Reviewer
		err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			return s.repomanager.Accounts(tx).Transfer(ctx, models.RewardPoolAccount, reviewer, currency.ReviewReward)
		})
		if err != nil {
			s.logger.Warn(ctx, "reviewer reward payment failed", "manuscript", m.ID, "reviewer", reviewer, "error", err.Error())
			unpaid = append(unpaid, reviewer)
		}
	}
	if len(unpaid) > 0 {
		return fmt.Errorf("%w: unpaid reviewers %v", common.ErrPartialPayout, unpaid)
	}
	return nil
}
