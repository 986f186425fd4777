package models

import (
	"time"

	"github.com/dmitrijs2005/peerreview/internal/currency"
)

// Escrow holds the submission fee locked against exactly one manuscript.
// The ID is derived deterministically from the manuscript ID, so a manuscript
// can never have more than one live escrow. Balance is funded once at
// submission and fully disbursed at settlement; Settled flips to true
// atomically with the disbursing transfer and is never reset.
type Escrow struct {
	ID           string
	ManuscriptID string
	Authority    string
	Balance      currency.Units
	Nonce        uint8
	Settled      bool
	CreatedAt    time.Time
}
