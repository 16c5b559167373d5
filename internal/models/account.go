package models

import (
	"github.com/shopspring/decimal"
)

// Account holds the running balance and the transactions in the order
// they were entered, which is not necessarily date order.
type Account struct {
	ID           string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// NewAccount returns an empty account with a zero balance.
func NewAccount(id string) *Account {
	return &Account{ID: id, Balance: decimal.Zero}
}

// Apply moves the balance and appends txn together.
func (a *Account) Apply(txn Transaction) {
	a.Balance = a.Balance.Add(txn.SignedAmount())
	a.Transactions = append(a.Transactions, txn)
}

// CountOn returns how many transactions are already recorded on date.
func (a *Account) CountOn(date Date) int {
	n := 0
	for _, t := range a.Transactions {
		if t.Date == date {
			n++
		}
	}
	return n
}

// Clone returns a copy that shares no slice storage with a.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Transactions = make([]Transaction, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return &cp
}
