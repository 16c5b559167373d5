package ledger_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sheikh-saqib/interest-ledger/internal/events/journal"
	"github.com/sheikh-saqib/interest-ledger/internal/ledger"
	"github.com/sheikh-saqib/interest-ledger/internal/models"
	"github.com/sheikh-saqib/interest-ledger/internal/models/events"
	"github.com/sheikh-saqib/interest-ledger/internal/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger() (*ledger.Ledger, *journal.Publisher) {
	pub := journal.NewPublisher()
	return ledger.NewLedger(memory.NewMemoryLedgerStore(), pub), pub
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecordTransactionDeposit(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger()

	txn, err := l.RecordTransaction(ctx, models.MustParseDate("20230626"), "AC001", models.Deposit, amt("100.00"))
	require.NoError(t, err)
	assert.Equal(t, "20230626-01", txn.ID)
	assert.True(t, l.AccountExists("AC001"))

	balance, err := l.GetBalance("AC001")
	require.NoError(t, err)
	assert.Equal(t, "100.00", balance.StringFixed(2))
}

func TestRecordTransactionWithdrawal(t *testing.T) {
	ctx := context.Background()
	date := models.MustParseDate("20230626")

	t.Run("should reduce balance", func(t *testing.T) {
		l, _ := newLedger()
		_, err := l.RecordTransaction(ctx, date, "AC001", models.Deposit, amt("200.00"))
		require.NoError(t, err)
		_, err = l.RecordTransaction(ctx, date, "AC001", models.Withdrawal, amt("50.00"))
		require.NoError(t, err)

		balance, err := l.GetBalance("AC001")
		require.NoError(t, err)
		assert.Equal(t, "150.00", balance.StringFixed(2))
	})

	t.Run("should reject insufficient funds without changing state", func(t *testing.T) {
		l, pub := newLedger()
		_, err := l.RecordTransaction(ctx, date, "AC001", models.Deposit, amt("50.00"))
		require.NoError(t, err)

		_, err = l.RecordTransaction(ctx, date, "AC001", models.Withdrawal, amt("100.00"))
		assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)

		balance, _ := l.GetBalance("AC001")
		assert.Equal(t, "50.00", balance.StringFixed(2))
		history, _ := l.TransactionHistory("AC001")
		assert.Len(t, history, 1)
		assert.Len(t, pub.Messages(), 1)
	})

	t.Run("should allow withdrawing the whole balance", func(t *testing.T) {
		l, _ := newLedger()
		_, err := l.RecordTransaction(ctx, date, "AC001", models.Deposit, amt("50.00"))
		require.NoError(t, err)
		_, err = l.RecordTransaction(ctx, date, "AC001", models.Withdrawal, amt("50.00"))
		require.NoError(t, err)

		balance, _ := l.GetBalance("AC001")
		assert.True(t, balance.IsZero())
	})

	t.Run("should reject a withdrawal as first transaction", func(t *testing.T) {
		l, pub := newLedger()
		_, err := l.RecordTransaction(ctx, date, "AC001", models.Withdrawal, amt("50.00"))
		assert.ErrorIs(t, err, ledger.ErrFirstTransactionWithdrawal)
		assert.False(t, l.AccountExists("AC001"))
		assert.Empty(t, pub.Messages())

		_, err = l.GetBalance("AC001")
		assert.ErrorIs(t, err, models.ErrAccountNotFound)
	})
}

func TestRecordTransactionValidation(t *testing.T) {
	ctx := context.Background()
	date := models.MustParseDate("20230626")
	l, _ := newLedger()

	for _, a := range []string{"0", "-5.00"} {
		_, err := l.RecordTransaction(ctx, date, "AC001", models.Deposit, amt(a))
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount, a)
	}

	_, err := l.RecordTransaction(ctx, date, "AC001", models.Interest, amt("1"))
	assert.ErrorIs(t, err, models.ErrInvalidTransactionType)
	assert.False(t, l.AccountExists("AC001"))
}

func TestTransactionIDsAreSequentialPerDay(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger()
	d1 := models.MustParseDate("20230601")
	d2 := models.MustParseDate("20230602")

	var ids []string
	for _, step := range []struct {
		date models.Date
		typ  models.TransactionType
	}{
		{d1, models.Deposit},
		{d1, models.Deposit},
		{d2, models.Withdrawal},
		{d1, models.Withdrawal},
		{d2, models.Deposit},
	} {
		txn, err := l.RecordTransaction(ctx, step.date, "AC001", step.typ, amt("10"))
		require.NoError(t, err)
		ids = append(ids, txn.ID)
	}

	assert.Equal(t, []string{"20230601-01", "20230601-02", "20230602-01", "20230601-03", "20230602-02"}, ids)

	// another account starts its own sequence
	txn, err := l.RecordTransaction(ctx, d1, "AC002", models.Deposit, amt("10"))
	require.NoError(t, err)
	assert.Equal(t, "20230601-01", txn.ID)
}

func TestBalanceEqualsSumOfSignedAmounts(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger()

	steps := []struct {
		date string
		typ  models.TransactionType
		amt  string
	}{
		{"20230505", models.Deposit, "100.00"},
		{"20230601", models.Deposit, "150.00"},
		{"20230626", models.Withdrawal, "20.00"},
		{"20230626", models.Withdrawal, "100.00"},
		{"20230410", models.Deposit, "0.55"},
		{"20230701", models.Withdrawal, "500.00"}, // rejected
	}
	for _, s := range steps {
		_, _ = l.RecordTransaction(ctx, models.MustParseDate(s.date), "AC001", s.typ, amt(s.amt))
	}

	history, err := l.TransactionHistory("AC001")
	require.NoError(t, err)
	require.Len(t, history, 5)
	sum := decimal.Zero
	for _, txn := range history {
		sum = sum.Add(txn.SignedAmount())
	}
	balance, _ := l.GetBalance("AC001")
	assert.True(t, sum.Equal(balance))
	assert.Equal(t, "130.55", balance.StringFixed(2))

	// entry order is kept, not date order
	assert.Equal(t, "20230505", models.FormatDate(history[0].Date))
	assert.Equal(t, "20230410", models.FormatDate(history[4].Date))
}

func TestRecordTransactionPublishesEvent(t *testing.T) {
	ctx := context.Background()
	l, pub := newLedger()

	_, err := l.RecordTransaction(ctx, models.MustParseDate("20230626"), "AC001", models.Deposit, amt("100"))
	require.NoError(t, err)

	msgs := pub.Topic(events.TopicTransactionRecorded)
	require.Len(t, msgs, 1)

	var evt events.TransactionRecorded
	require.NoError(t, json.Unmarshal(msgs[0].Value, &evt))
	assert.NotEmpty(t, evt.EventID)
	assert.Equal(t, "20230626-01", evt.TransactionID)
	assert.Equal(t, "AC001", evt.AccountID)
	assert.Equal(t, "D", evt.Type)
	assert.True(t, evt.Balance.Equal(amt("100")))
}

func TestLedgerWithoutPublisher(t *testing.T) {
	l := ledger.NewLedger(memory.NewMemoryLedgerStore(), nil)
	_, err := l.RecordTransaction(context.Background(), models.MustParseDate("20230626"), "AC001", models.Deposit, amt("1"))
	assert.NoError(t, err)
}
