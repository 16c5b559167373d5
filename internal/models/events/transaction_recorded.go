package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TopicTransactionRecorded = "transaction_recorded"
	TopicInterestRuleDefined = "interest_rule_defined"
)

type TransactionRecorded struct {
	EventID       string          `json:"event_id"`
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type InterestRuleDefined struct {
	EventID    string          `json:"event_id"`
	RuleID     string          `json:"rule_id"`
	Date       string          `json:"date"`
	Rate       decimal.Decimal `json:"rate"`
	Replaced   bool            `json:"replaced"` // an older rule on the same date was overwritten
	OccurredAt time.Time       `json:"occurred_at"`
}
