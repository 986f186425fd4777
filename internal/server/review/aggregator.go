// Package review implements decision aggregation for manuscripts: recording
// reviewer decisions, quorum detection, and majority verdict computation.
// All functions are pure over the Manuscript model; persistence and
// concurrency control stay with the caller.
package review

import (
	"fmt"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
)

// MinReviews is the quorum: the minimum number of recorded decisions required
// before a verdict may be computed.
const MinReviews = 3

// RecordDecision validates and appends one (reviewer, decision) pair.
// It fails with common.ErrStateConflict if the manuscript is finalized,
// common.ErrDuplicateEntry if the reviewer already voted,
// common.ErrCapacityExceeded if the panel is full, and common.ErrInvalidInput
// for an unknown decision token.
func RecordDecision(m *models.Manuscript, reviewer, decision string) error {
	if m.Finalized() {
		return fmt.Errorf("%w: manuscript %s is %s", common.ErrStateConflict, m.ID, m.Status)
	}
	if decision != models.DecisionAccept && decision != models.DecisionReject {
		return fmt.Errorf("%w: unknown decision %q", common.ErrInvalidInput, decision)
	}
	if m.HasReviewer(reviewer) {
		return fmt.Errorf("%w: reviewer %s already recorded a decision", common.ErrDuplicateEntry, reviewer)
	}
	if len(m.Reviews) >= models.MaxReviewers {
		return fmt.Errorf("%w: review panel is full", common.ErrCapacityExceeded)
	}
	m.Reviews = append(m.Reviews, models.Review{Reviewer: reviewer, Decision: decision})
	if m.Status == models.StatusSubmitted {
		m.Status = models.StatusUnderReview
	}
	return nil
}

// QuorumReached reports whether enough decisions are in to compute a verdict.
func QuorumReached(m *models.Manuscript) bool {
	return len(m.Reviews) >= MinReviews
}

// Verdict aggregates the recorded decisions by majority. Strictly more
// Accept tokens than Reject yields StatusAccepted; otherwise StatusRejected
// (an even split counts as rejection). Calling before quorum fails with
// common.ErrQuorumNotMet.
func Verdict(m *models.Manuscript) (string, error) {
	if !QuorumReached(m) {
		return "", fmt.Errorf("%w: %d of %d decisions recorded", common.ErrQuorumNotMet, len(m.Reviews), MinReviews)
	}
	accepts := 0
	for _, r := range m.Reviews {
		if r.Decision == models.DecisionAccept {
			accepts++
		}
	}
	if accepts > len(m.Reviews)-accepts {
		return models.StatusAccepted, nil
	}
	return models.StatusRejected, nil
}
