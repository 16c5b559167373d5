package ledger

import "errors"

var (
	ErrInvalidAmount              = errors.New("amount must be positive")
	ErrFirstTransactionWithdrawal = errors.New("first transaction on an account cannot be a withdrawal")
	ErrInsufficientBalance        = errors.New("insufficient balance")
)
