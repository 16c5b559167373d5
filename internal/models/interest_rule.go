package models

import (
	"github.com/shopspring/decimal"
)

// InterestRule is a named annual rate effective from Date until the next
// rule takes over. Rate is in percent, so 2.20 means 2.20%.
type InterestRule struct {
	Date   Date
	RuleID string
	Rate   decimal.Decimal
}
