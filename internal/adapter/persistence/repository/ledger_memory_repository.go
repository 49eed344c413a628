package repository

import (
	"context"
	"sync"

	"carbody_insurance/internal/ledger"
	"carbody_insurance/internal/usecase/interfaces"
)

// LedgerMemoryRepository keeps the committed ledger in process memory.
// It is the default store for local runs and tests.

type LedgerMemoryRepository struct {
	mu    sync.Mutex
	state *ledger.State
}

var _ interfaces.ILedgerRepository = (*LedgerMemoryRepository)(nil)

func NewLedgerMemoryRepository() *LedgerMemoryRepository {
	return &LedgerMemoryRepository{state: ledger.New()}
}

func (r *LedgerMemoryRepository) Load(_ context.Context) (ledger.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Snapshot(), nil
}

func (r *LedgerMemoryRepository) Commit(_ context.Context, cs ledger.ChangeSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Apply(cs)
}
