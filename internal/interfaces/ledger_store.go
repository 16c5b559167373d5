package interfaces

import (
	"context"

	"github.com/sheikh-saqib/interest-ledger/internal/models"
)

// LedgerStore keeps account state keyed by account id. Implementations
// hand out copies so callers cannot change stored state without UpsertAccount.
type LedgerStore interface {
	UpsertAccount(ctx context.Context, account *models.Account) error
	GetAccount(accountID string) (*models.Account, error)
	Exists(accountID string) bool
	ListAccounts() []*models.Account
}
