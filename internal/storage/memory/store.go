package memory

import (
	"context"
	"errors"
	"sort"

	interfaces "github.com/sheikh-saqib/interest-ledger/internal/interfaces" // interface LedgerStore
	"github.com/sheikh-saqib/interest-ledger/internal/models"                // domain models: Account
)

// MemoryLedgerStore is an in-memory implementation of interfaces.LedgerStore.
// Accounts live for the lifetime of the process and are never evicted.
// It is owned by a single caller and does no locking.
type MemoryLedgerStore struct {
	accounts map[string]*models.Account
}

// NewMemoryLedgerStore creates and returns an empty MemoryLedgerStore
func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{
		accounts: make(map[string]*models.Account),
	}
}

// UpsertAccount stores a copy of account, replacing any previous state.
func (m *MemoryLedgerStore) UpsertAccount(_ context.Context, account *models.Account) error {
	if account == nil || account.ID == "" {
		return errors.New("account id is required")
	}
	m.accounts[account.ID] = account.Clone()
	return nil
}

// GetAccount returns a copy of the stored account so external code can't
// modify internal state.
func (m *MemoryLedgerStore) GetAccount(accountID string) (*models.Account, error) {
	a, ok := m.accounts[accountID]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return a.Clone(), nil
}

func (m *MemoryLedgerStore) Exists(accountID string) bool {
	_, ok := m.accounts[accountID]
	return ok
}

// ListAccounts returns copies of every account ordered by id.
func (m *MemoryLedgerStore) ListAccounts() []*models.Account {
	out := make([]*models.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Compile-time check: ensure MemoryLedgerStore implements LedgerStore interface
var _ interfaces.LedgerStore = (*MemoryLedgerStore)(nil)
