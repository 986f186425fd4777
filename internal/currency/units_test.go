package currency

import (
	"math"
	"testing"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOverflow(t *testing.T) {
	_, err := Units(math.MaxUint64).Add(1)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	sum, err := SubmissionFee.Add(ReviewReward)
	require.NoError(t, err)
	assert.Equal(t, Units(60_000_000), sum)
}

func TestSubInsufficient(t *testing.T) {
	_, err := ReviewReward.Sub(SubmissionFee)
	assert.ErrorIs(t, err, common.ErrInsufficientFunds)

	rest, err := SubmissionFee.Sub(ReviewReward)
	require.NoError(t, err)
	assert.Equal(t, Units(40_000_000), rest)
}

func TestString(t *testing.T) {
	assert.Equal(t, "50.000000", SubmissionFee.String())
	assert.Equal(t, "0.000001", Units(1).String())
}
