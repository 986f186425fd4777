package escrow

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/escrows"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/repomanager"
)

// RejectionPolicy fixes what happens to the escrowed fee when a manuscript is
// rejected. Acceptance always forfeits the fee to the treasury; rejection is a
// deployment choice.
type RejectionPolicy string

const (
	// RefundOnReject returns the fee to the author.
	RefundOnReject RejectionPolicy = "refund"
	// ForfeitOnReject moves the fee to the treasury, same as acceptance.
	ForfeitOnReject RejectionPolicy = "forfeit"
)

// DefaultAuthority is the identity recorded as permitted to release escrows.
const DefaultAuthority = "settlement"

// Controller opens and settles manuscript escrows. All methods run against the
// caller-provided DBTX so the caller decides the transaction boundary; fund
// movement and escrow record changes always commit or roll back together.
type Controller struct {
	rm        repomanager.RepositoryManager
	authority string
	policy    RejectionPolicy
}

// NewController constructs a Controller with the given rejection policy.
func NewController(rm repomanager.RepositoryManager, policy RejectionPolicy) *Controller {
	return &Controller{rm: rm, authority: DefaultAuthority, policy: policy}
}

// Open derives the escrow for the manuscript, creates its record, and moves
// fee from the payer into the escrow sub-account. It fails with
// common.ErrDuplicateEntry if the manuscript already has an escrow and
// common.ErrInsufficientFunds if the payer cannot cover the fee; on any error
// nothing is retained (run inside a transaction).
func (c *Controller) Open(ctx context.Context, db dbx.DBTX, manuscriptID, payer string, fee currency.Units) (*models.Escrow, error) {
	if fee != currency.SubmissionFee {
		return nil, fmt.Errorf("%w: fee must be %s", common.ErrInvalidInput, currency.SubmissionFee)
	}

	repo := c.rm.Escrows(db)
	if _, err := repo.GetByManuscript(ctx, manuscriptID); err == nil {
		return nil, fmt.Errorf("%w: escrow for manuscript %s", common.ErrDuplicateEntry, manuscriptID)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	e := &models.Escrow{
		ManuscriptID: manuscriptID,
		Authority:    c.authority,
		Balance:      fee,
	}
	for nonce := 0; ; nonce++ {
		e.Nonce = uint8(nonce)
		e.ID = DeriveID(manuscriptID, e.Nonce)
		err := repo.Create(ctx, e)
		if err == nil {
			break
		}
		// another manuscript holds the derived ID: bump the nonce. A racing
		// duplicate for the same manuscript surfaces as ErrDuplicateEntry
		// and must not be retried.
		if errors.Is(err, escrows.ErrIDCollision) && nonce < 255 {
			continue
		}
		return nil, err
	}

	if err := c.rm.Accounts(db).Transfer(ctx, payer, e.ID, fee); err != nil {
		return nil, err
	}
	return e, nil
}

// Settle disburses the full escrow balance according to the verdict recorded
// on the manuscript and closes the escrow. It fails with
// common.ErrStateConflict if the manuscript has not reached a terminal state
// or if the escrow was already settled, and common.ErrorNotFound if no escrow
// exists. Settlement is exactly-once: the settled flag flips atomically with
// the zeroing of the balance, and the fund transfer shares the transaction.
func (c *Controller) Settle(ctx context.Context, db dbx.DBTX, m *models.Manuscript) (currency.Units, error) {
	if !m.Finalized() {
		return 0, fmt.Errorf("%w: manuscript %s is not finalized", common.ErrStateConflict, m.ID)
	}

	repo := c.rm.Escrows(db)
	e, err := repo.GetByManuscript(ctx, m.ID)
	if err != nil {
		return 0, err
	}

	held, err := repo.Settle(ctx, e.ID)
	if err != nil {
		return 0, err
	}

	dest := models.TreasuryAccount
	if m.Status == models.StatusRejected && c.policy == RefundOnReject {
		dest = m.Author
	}
	if err := c.rm.Accounts(db).Transfer(ctx, e.ID, dest, held); err != nil {
		return 0, err
	}
	return held, nil
}
