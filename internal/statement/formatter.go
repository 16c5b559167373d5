// Package statement renders accounts and interest rules as the fixed-width
// pipe tables shown on the console. Column text is part of the console
// contract and must not drift.
package statement

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sheikh-saqib/interest-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const (
	statementHeader        = "| Date     | Txn Id      | Type | Amount |"
	monthlyStatementHeader = "| Date     | Txn Id      | Type | Amount | Balance |"
	interestRulesHeader    = "| Date     | RuleId | Rate (%) |"

	// literalMonthEndDay is the day printed on the interest row unless the
	// formatter is asked for the true last day of the month.
	literalMonthEndDay = 30
)

// Accrual is what the formatter needs from the interest engine.
type Accrual interface {
	StartingBalance(account *models.Account, year int, month time.Month) decimal.Decimal
	MonthlyInterest(account *models.Account, year int, month time.Month) decimal.Decimal
}

type Formatter struct {
	accrual        Accrual
	actualMonthEnd bool
}

// NewFormatter builds a Formatter. With actualMonthEnd the interest row is
// dated on the real last day of the month instead of day 30.
func NewFormatter(accrual Accrual, actualMonthEnd bool) *Formatter {
	return &Formatter{accrual: accrual, actualMonthEnd: actualMonthEnd}
}

// Statement lists every transaction in the order it was entered.
func (f *Formatter) Statement(account *models.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", account.ID)
	b.WriteString(statementHeader + "\n")
	for _, txn := range account.Transactions {
		fmt.Fprintf(&b, "| %s | %s | %-4s | %7s |\n",
			models.FormatDate(txn.Date), txn.ID, string(txn.Type), txn.Amount.StringFixed(2))
	}
	return b.String()
}

// MonthlyStatement lists the month's transactions by date with a running
// balance, followed by the month-end interest row.
func (f *Formatter) MonthlyStatement(account *models.Account, year int, month time.Month) string {
	var txns []models.Transaction
	for _, txn := range account.Transactions {
		if models.InMonth(txn.Date, year, month) {
			txns = append(txns, txn)
		}
	}
	slices.SortStableFunc(txns, func(a, b models.Transaction) int {
		return models.CompareDates(a.Date, b.Date)
	})

	balance := f.accrual.StartingBalance(account, year, month)
	interest := f.accrual.MonthlyInterest(account, year, month)

	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", account.ID)
	b.WriteString(monthlyStatementHeader + "\n")
	for _, txn := range txns {
		balance = balance.Add(txn.SignedAmount())
		fmt.Fprintf(&b, "| %s | %s | %-4s | %7s | %8s |\n",
			models.FormatDate(txn.Date), txn.ID, string(txn.Type),
			txn.Amount.StringFixed(2), balance.StringFixed(2))
	}
	fmt.Fprintf(&b, "| %s | %11s | %-4s | %7s | %8s |\n",
		f.interestRowDate(year, month), "", string(models.Interest),
		interest.StringFixed(2), balance.Add(interest).StringFixed(2))
	return b.String()
}

func (f *Formatter) interestRowDate(year int, month time.Month) string {
	if f.actualMonthEnd {
		return models.FormatDate(models.LastDayOfMonth(year, month))
	}
	return fmt.Sprintf("%04d%02d%02d", year, int(month), literalMonthEndDay)
}

// InterestRules lists rules in the order given, normally by date.
func (f *Formatter) InterestRules(rules []models.InterestRule) string {
	var b strings.Builder
	b.WriteString("Interest rules:\n")
	b.WriteString(interestRulesHeader + "\n")
	for _, rule := range rules {
		fmt.Fprintf(&b, "| %s | %s | %8s |\n",
			models.FormatDate(rule.Date), rule.RuleID, rule.Rate.StringFixed(2))
	}
	return b.String()
}
