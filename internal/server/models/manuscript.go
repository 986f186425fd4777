package models

import "time"

// Manuscript lifecycle states. A manuscript starts in StatusSubmitted, moves
// to StatusUnderReview on the first recorded decision, and ends in exactly one
// of StatusAccepted or StatusRejected. Terminal states have no outbound
// transitions.
const (
	StatusSubmitted   = "Submitted"
	StatusUnderReview = "UnderReview"
	StatusAccepted    = "Accepted"
	StatusRejected    = "Rejected"
)

// Decision tokens recorded by reviewers.
const (
	DecisionAccept = "Accept"
	DecisionReject = "Reject"
)

const (
	// MaxContentRefLen bounds the opaque content pointer.
	MaxContentRefLen = 128
	// MaxDecisionLen bounds a single decision token.
	MaxDecisionLen = 16
	// MaxStatusLen bounds the status label.
	MaxStatusLen = 16
	// MaxReviewers is the hard capacity of the review panel.
	MaxReviewers = 10
)

// Review is one reviewer's recorded decision on a manuscript. Reviews are
// ordered and append-only; a reviewer appears at most once per manuscript.
type Review struct {
	Reviewer string
	Decision string
}

// Manuscript is one submission under review. Author and ContentRef are
// immutable after creation. Version is a server-assigned counter bumped on
// every mutation; updates are applied with a compare-and-swap on it so that
// concurrent reviewer submissions serialize and finalization happens at most
// once.
type Manuscript struct {
	ID             string
	Author         string
	ContentRef     string
	Status         string
	Reviews        []Review
	SubmissionTime time.Time
	Version        int64
}

// Finalized reports whether the manuscript has reached a terminal state.
func (m *Manuscript) Finalized() bool {
	return m.Status == StatusAccepted || m.Status == StatusRejected
}

// HasReviewer reports whether the reviewer already recorded a decision.
func (m *Manuscript) HasReviewer(reviewer string) bool {
	for _, r := range m.Reviews {
		if r.Reviewer == reviewer {
			return true
		}
	}
	return false
}
