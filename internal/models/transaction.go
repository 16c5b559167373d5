package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType is the one-letter type code shown on statements.
type TransactionType string

const (
	Deposit    TransactionType = "D"
	Withdrawal TransactionType = "W"
	Interest   TransactionType = "I" // synthetic month-end row, never stored
)

// ParseTransactionType accepts D or W in either case.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Deposit, Withdrawal:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}
}

// Transaction is a single deposit or withdrawal recorded against an account
type Transaction struct {
	AccountID string
	Date      Date
	ID        string          // <yyyyMMdd>-<NN>, sequence within the day
	Type      TransactionType // D or W
	Amount    decimal.Decimal // always positive
}

// SignedAmount is +Amount for deposits and -Amount for withdrawals.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionID builds the display id for the seq-th transaction of a day.
func TransactionID(date Date, seq int) string {
	return fmt.Sprintf("%s-%02d", FormatDate(date), seq)
}
