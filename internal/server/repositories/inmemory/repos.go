package inmemory

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/escrows"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/manuscripts"
	"github.com/google/uuid"
)

// --- users ---

type userRepo struct{ m *Manager }

func (r *userRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.users[user.Wallet]; ok {
		return nil, fmt.Errorf("%w: wallet %s", common.ErrDuplicateEntry, user.Wallet)
	}
	stored := *user
	stored.CreatedAt = time.Now()
	r.m.users[user.Wallet] = &stored
	copied := stored
	return &copied, nil
}

func (r *userRepo) GetByWallet(ctx context.Context, wallet string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[wallet]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *userRepo) UpdateEducation(ctx context.Context, wallet string, education string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[wallet]
	if !ok {
		return common.ErrorNotFound
	}
	u.Education = education
	return nil
}

func (r *userRepo) IncrementPublishedPapers(ctx context.Context, wallet string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[wallet]
	if !ok {
		return common.ErrorNotFound
	}
	u.PublishedPapers++
	return nil
}

// --- manuscripts ---

type manuscriptRepo struct{ m *Manager }

func copyManuscript(m *models.Manuscript) *models.Manuscript {
	copied := *m
	copied.Reviews = append([]models.Review(nil), m.Reviews...)
	return &copied
}

func (r *manuscriptRepo) Create(ctx context.Context, m *models.Manuscript) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.manuscripts[m.ID]; ok {
		return fmt.Errorf("%w: manuscript %s", common.ErrDuplicateEntry, m.ID)
	}
	m.Version = 1
	r.m.manuscripts[m.ID] = copyManuscript(m)
	return nil
}

func (r *manuscriptRepo) Get(ctx context.Context, id string) (*models.Manuscript, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	m, ok := r.m.manuscripts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyManuscript(m), nil
}

func (r *manuscriptRepo) List(ctx context.Context, f manuscripts.Filter) ([]*models.Manuscript, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var result []*models.Manuscript
	for _, m := range r.m.manuscripts {
		if f.Author != "" && m.Author != f.Author {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		result = append(result, copyManuscript(m))
	}
	return result, nil
}

func (r *manuscriptRepo) UpdateStatus(ctx context.Context, id string, status string, expectedVersion int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	m, ok := r.m.manuscripts[id]
	if !ok {
		return common.ErrorNotFound
	}
	if m.Version != expectedVersion {
		return common.ErrVersionConflict
	}
	m.Status = status
	m.Version++
	return nil
}

func (r *manuscriptRepo) AppendReview(ctx context.Context, manuscriptID string, idx int, rev models.Review) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	m, ok := r.m.manuscripts[manuscriptID]
	if !ok {
		return common.ErrorNotFound
	}
	if m.HasReviewer(rev.Reviewer) {
		return fmt.Errorf("%w: reviewer %s", common.ErrDuplicateEntry, rev.Reviewer)
	}
	if idx != len(m.Reviews) {
		return common.ErrVersionConflict
	}
	m.Reviews = append(m.Reviews, rev)
	return nil
}

// --- escrows ---

type escrowRepo struct{ m *Manager }

func (r *escrowRepo) Create(ctx context.Context, e *models.Escrow) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.escrowByMs[e.ManuscriptID]; ok {
		return fmt.Errorf("%w: escrow for manuscript %s", common.ErrDuplicateEntry, e.ManuscriptID)
	}
	if _, ok := r.m.escrows[e.ID]; ok {
		return fmt.Errorf("%w: id %s", escrows.ErrIDCollision, e.ID)
	}
	stored := *e
	stored.CreatedAt = time.Now()
	r.m.escrows[e.ID] = &stored
	r.m.escrowByMs[e.ManuscriptID] = e.ID
	return nil
}

func (r *escrowRepo) GetByManuscript(ctx context.Context, manuscriptID string) (*models.Escrow, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	id, ok := r.m.escrowByMs[manuscriptID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *r.m.escrows[id]
	return &copied, nil
}

func (r *escrowRepo) Settle(ctx context.Context, id string) (currency.Units, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e, ok := r.m.escrows[id]
	if !ok || e.Settled {
		return 0, fmt.Errorf("%w: escrow %s already settled or missing", common.ErrStateConflict, id)
	}
	held := e.Balance
	e.Balance = 0
	e.Settled = true
	return held, nil
}

// --- accounts ---

type accountRepo struct{ m *Manager }

func (r *accountRepo) Get(ctx context.Context, id string) (*models.Account, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	balance, ok := r.m.balances[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Account{ID: id, Balance: balance}, nil
}

func (r *accountRepo) Deposit(ctx context.Context, id string, amount currency.Units) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	sum, err := r.m.balances[id].Add(amount)
	if err != nil {
		return fmt.Errorf("account %s: %w", id, err)
	}
	r.m.balances[id] = sum
	return nil
}

func (r *accountRepo) Withdraw(ctx context.Context, id string, amount currency.Units) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rest, err := r.m.balances[id].Sub(amount)
	if err != nil {
		return fmt.Errorf("account %s: %w", id, err)
	}
	r.m.balances[id] = rest
	return nil
}

func (r *accountRepo) Transfer(ctx context.Context, from, to string, amount currency.Units) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rest, err := r.m.balances[from].Sub(amount)
	if err != nil {
		return fmt.Errorf("account %s: %w", from, err)
	}
	sum, err := r.m.balances[to].Add(amount)
	if err != nil {
		return fmt.Errorf("account %s: %w", to, err)
	}
	r.m.balances[from] = rest
	r.m.balances[to] = sum
	return nil
}

// --- refresh tokens ---

type tokenRepo struct{ m *Manager }

func (r *tokenRepo) Create(ctx context.Context, wallet string, token string, validity time.Duration) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.tokens[token] = &models.RefreshToken{
		ID:        uuid.NewString(),
		Wallet:    wallet,
		Token:     token,
		Expires:   time.Now().Add(validity),
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *tokenRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	tok, ok := r.m.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *tok
	return &copied, nil
}

func (r *tokenRepo) Delete(ctx context.Context, token string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.tokens, token)
	return nil
}
