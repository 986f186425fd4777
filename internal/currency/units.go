// Package currency defines the fixed-point monetary type shared by the escrow
// and reward flows. Amounts are unsigned 64-bit integers scaled by 10^6, so
// one unit is $0.000001. Both the stable submission fee and the reward token
// use this representation.
package currency

import (
	"fmt"

	"github.com/dmitrijs2005/peerreview/internal/common"
)

// Units is a monetary amount with 6 decimal places of precision.
type Units uint64

// Scale is the number of units per whole currency (10^6).
const Scale = 1_000_000

const (
	// SubmissionFee is the amount escrowed against every manuscript ($50).
	SubmissionFee Units = 50_000_000

	// ReviewReward is paid to each reviewer of a finalized manuscript ($1
	// worth of the reward token at 6 decimals).
	ReviewReward Units = 10_000_000
)

// Add returns u+v, failing on uint64 overflow.
func (u Units) Add(v Units) (Units, error) {
	sum := u + v
	if sum < u {
		return 0, fmt.Errorf("%w: amount overflow", common.ErrInvalidInput)
	}
	return sum, nil
}

// Sub returns u-v, failing if v exceeds u.
func (u Units) Sub(v Units) (Units, error) {
	if v > u {
		return 0, common.ErrInsufficientFunds
	}
	return u - v, nil
}

// String renders the amount in whole-currency notation, e.g. "50.000000".
func (u Units) String() string {
	return fmt.Sprintf("%d.%06d", uint64(u)/Scale, uint64(u)%Scale)
}
