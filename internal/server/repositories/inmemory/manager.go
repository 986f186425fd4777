// Package inmemory provides map-backed repository implementations used by
// service tests and local experiments. Individual repository calls are
// guarded by a store mutex; RunSerialized serializes whole read-modify-write
// sequences and rolls the store back when the sequence fails, standing in
// for a database transaction.
package inmemory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/peerreview/internal/currency"
	"github.com/dmitrijs2005/peerreview/internal/dbx"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/escrows"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/manuscripts"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/users"
)

// Manager vends in-memory repositories sharing one store. The DBTX arguments
// of the factory methods are ignored; all state lives in the maps below.
// mu protects the maps on every repository call; txMu serializes transactions
// started via RunSerialized so a whole sequence observes and mutates the
// store atomically relative to other sequences.
type Manager struct {
	mu   sync.Mutex
	txMu sync.Mutex

	users       map[string]*models.User
	manuscripts map[string]*models.Manuscript
	escrows     map[string]*models.Escrow
	escrowByMs  map[string]string
	tokens      map[string]*models.RefreshToken
	balances    map[string]currency.Units
}

// storeState is one complete copy of the store maps, used as the rollback
// snapshot for RunSerialized.
type storeState struct {
	users       map[string]*models.User
	manuscripts map[string]*models.Manuscript
	escrows     map[string]*models.Escrow
	escrowByMs  map[string]string
	tokens      map[string]*models.RefreshToken
	balances    map[string]currency.Units
}

func newStoreState() *storeState {
	return &storeState{
		users:       make(map[string]*models.User),
		manuscripts: make(map[string]*models.Manuscript),
		escrows:     make(map[string]*models.Escrow),
		escrowByMs:  make(map[string]string),
		tokens:      make(map[string]*models.RefreshToken),
		balances:    make(map[string]currency.Units),
	}
}

// NewManager constructs an empty in-memory store.
func NewManager() *Manager {
	s := newStoreState()
	return &Manager{
		users:       s.users,
		manuscripts: s.manuscripts,
		escrows:     s.escrows,
		escrowByMs:  s.escrowByMs,
		tokens:      s.tokens,
		balances:    s.balances,
	}
}

var _ repomanager.RepositoryManager = (*Manager)(nil)

func (m *Manager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (m *Manager) Users(db dbx.DBTX) users.Repository { return &userRepo{m} }

func (m *Manager) Manuscripts(db dbx.DBTX) manuscripts.Repository { return &manuscriptRepo{m} }

func (m *Manager) Escrows(db dbx.DBTX) escrows.Repository { return &escrowRepo{m} }

func (m *Manager) Accounts(db dbx.DBTX) accounts.Repository { return &accountRepo{m} }

func (m *Manager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository { return &tokenRepo{m} }

// RunSerialized executes fn under the transaction mutex, so concurrent
// sequences (for example racing review submissions) apply one at a time.
// When fn fails, the store is restored from a snapshot taken on entry, so a
// failed sequence leaves nothing behind: a submit that cannot fund its
// escrow must not leave a manuscript record. It satisfies the
// transaction-runner seam of the services layer; the DBTX passed to fn is
// nil because the in-memory repositories ignore it.
func (m *Manager) RunSerialized(ctx context.Context, fn func(ctx context.Context, db dbx.DBTX) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	snap := m.snapshot()
	if err := fn(ctx, nil); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

// snapshot copies the whole store. Record structs are copied by value so
// in-place mutations after the snapshot cannot leak into it.
func (m *Manager) snapshot() *storeState {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := newStoreState()
	for k, v := range m.users {
		u := *v
		s.users[k] = &u
	}
	for k, v := range m.manuscripts {
		s.manuscripts[k] = copyManuscript(v)
	}
	for k, v := range m.escrows {
		e := *v
		s.escrows[k] = &e
	}
	for k, v := range m.escrowByMs {
		s.escrowByMs[k] = v
	}
	for k, v := range m.tokens {
		t := *v
		s.tokens[k] = &t
	}
	for k, v := range m.balances {
		s.balances[k] = v
	}
	return s
}

// restore replaces the store contents with a previously taken snapshot.
func (m *Manager) restore(s *storeState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = s.users
	m.manuscripts = s.manuscripts
	m.escrows = s.escrows
	m.escrowByMs = s.escrowByMs
	m.tokens = s.tokens
	m.balances = s.balances
}

// SetBalance seeds a ledger balance directly, bypassing transfer rules.
func (m *Manager) SetBalance(id string, balance currency.Units) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[id] = balance
}

// Balance reads a ledger balance directly.
func (m *Manager) Balance(id string) currency.Units {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[id]
}
