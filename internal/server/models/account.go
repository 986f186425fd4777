package models

import "github.com/dmitrijs2005/peerreview/internal/currency"

// Account is one fund-holding balance in the internal ledger: a user wallet,
// the protocol treasury, the reward pool, or a manuscript escrow sub-account.
type Account struct {
	ID      string
	Balance currency.Units
}

// Well-known ledger account IDs.
const (
	TreasuryAccount   = "treasury"
	RewardPoolAccount = "reward_pool"
)
