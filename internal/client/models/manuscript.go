package models

import (
	"fmt"
	"strings"
	"time"
)

// Review is one reviewer's decision as reported by the server.
type Review struct {
	Reviewer string
	Decision string
}

// Manuscript is the client-side view of a submission.
type Manuscript struct {
	ID             string
	Author         string
	ContentRef     string
	Status         string
	Reviews        []Review
	SubmissionTime time.Time
}

// String renders a one-line summary suitable for list output.
func (m *Manuscript) String() string {
	return fmt.Sprintf("%s  %-12s %s  reviews=%d  %s",
		m.ID, m.Status, m.Author, len(m.Reviews), m.SubmissionTime.Format("2006-01-02 15:04"))
}

// Details renders a multi-line view including the review panel.
func (m *Manuscript) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:         %s\n", m.ID)
	fmt.Fprintf(&b, "Author:     %s\n", m.Author)
	fmt.Fprintf(&b, "Status:     %s\n", m.Status)
	fmt.Fprintf(&b, "Content:    %s\n", m.ContentRef)
	fmt.Fprintf(&b, "Submitted:  %s\n", m.SubmissionTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Reviews:\n")
	for _, r := range m.Reviews {
		fmt.Fprintf(&b, "  %-44s %s\n", r.Reviewer, r.Decision)
	}
	return b.String()
}
