package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	interfaces "github.com/sheikh-saqib/interest-ledger/internal/interfaces"
	"github.com/sheikh-saqib/interest-ledger/internal/logger"
	"github.com/sheikh-saqib/interest-ledger/internal/models"
	"github.com/sheikh-saqib/interest-ledger/internal/models/events"
	"github.com/shopspring/decimal"
)

// Ledger records deposits and withdrawals against a LedgerStore.
// It holds no account state of its own.
type Ledger struct {
	store     interfaces.LedgerStore    // where accounts live, can be any storage implementation
	publisher interfaces.EventPublisher // optional, receives TransactionRecorded events
}

// NewLedger is a constructor function that creates a new Ledger instance.
// publisher may be nil.
func NewLedger(store interfaces.LedgerStore, publisher interfaces.EventPublisher) *Ledger {
	return &Ledger{
		store:     store,
		publisher: publisher,
	}
}

// RecordTransaction validates a deposit or withdrawal and, if it is
// allowed, applies it to the account. Nothing is changed on failure.
//
// A deposit on an unknown account opens it. The transaction id is the
// date followed by the 1-based count of that account's transactions on
// the same calendar day.
func (l *Ledger) RecordTransaction(ctx context.Context, date models.Date, accountID string, txnType models.TransactionType, amount decimal.Decimal) (models.Transaction, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}
	if txnType != models.Deposit && txnType != models.Withdrawal {
		return models.Transaction{}, fmt.Errorf("%w: %q", models.ErrInvalidTransactionType, string(txnType))
	}

	account, err := l.store.GetAccount(accountID)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrAccountNotFound) && txnType == models.Deposit:
		account = models.NewAccount(accountID)
	case errors.Is(err, models.ErrAccountNotFound):
		return models.Transaction{}, ErrFirstTransactionWithdrawal
	default:
		return models.Transaction{}, err
	}

	if txnType == models.Withdrawal && account.Balance.LessThan(amount) {
		return models.Transaction{}, fmt.Errorf("%w: balance %s, withdrawal %s",
			ErrInsufficientBalance, account.Balance.StringFixed(2), amount.StringFixed(2))
	}

	txn := models.Transaction{
		AccountID: accountID,
		Date:      date,
		ID:        models.TransactionID(date, account.CountOn(date)+1),
		Type:      txnType,
		Amount:    amount,
	}
	account.Apply(txn)

	if err := l.store.UpsertAccount(ctx, account); err != nil {
		return models.Transaction{}, err
	}

	logger.Info("transaction recorded", logger.Fields{
		"accountId":     accountID,
		"transactionId": txn.ID,
		"type":          string(txnType),
		"amount":        amount.StringFixed(2),
		"balance":       account.Balance.StringFixed(2),
	})
	l.publish(events.TopicTransactionRecorded, events.TransactionRecorded{
		EventID:       uuid.New().String(),
		TransactionID: txn.ID,
		AccountID:     accountID,
		Date:          models.FormatDate(date),
		Type:          string(txnType),
		Amount:        amount,
		Balance:       account.Balance,
		OccurredAt:    time.Now(),
	})

	return txn, nil
}

func (l *Ledger) publish(topic string, event any) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(topic, event); err != nil {
		logger.Error("publish event failed", err, logger.Fields{"topic": topic})
	}
}

func (l *Ledger) AccountExists(accountID string) bool {
	return l.store.Exists(accountID)
}

func (l *Ledger) GetAccount(accountID string) (*models.Account, error) {
	return l.store.GetAccount(accountID)
}

func (l *Ledger) GetBalance(accountID string) (decimal.Decimal, error) {
	account, err := l.store.GetAccount(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// TransactionHistory returns the account's transactions in entry order.
func (l *Ledger) TransactionHistory(accountID string) ([]models.Transaction, error) {
	account, err := l.store.GetAccount(accountID)
	if err != nil {
		return []models.Transaction{}, err
	}
	return account.Transactions, nil
}
