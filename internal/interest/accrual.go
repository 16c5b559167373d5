package interest

import (
	"slices"
	"time"

	"github.com/sheikh-saqib/interest-ledger/internal/logger"
	"github.com/sheikh-saqib/interest-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const daysInYear = 365

// RuleBook is the read side of the rule registry used for accrual.
type RuleBook interface {
	ApplicableRule(date models.Date) (models.InterestRule, bool)
	RuleOn(date models.Date) (models.InterestRule, bool)
	RulesInMonth(year int, month time.Month) []models.InterestRule
}

// SubPeriod is a run of days inside one month over which both the
// balance and the rate stay constant. Rule is nil when no rule had taken
// effect yet; such a period earns nothing.
type SubPeriod struct {
	Start   models.Date
	End     models.Date
	Balance decimal.Decimal
	Rule    *models.InterestRule
}

// Days counts both ends of the period.
func (p SubPeriod) Days() int {
	return p.End.DaysSince(p.Start) + 1
}

// Interest is balance * rate% * days / 365, unrounded.
func (p SubPeriod) Interest() decimal.Decimal {
	if p.Rule == nil {
		return decimal.Zero
	}
	return p.Balance.
		Mul(p.Rule.Rate).
		Mul(decimal.NewFromInt(int64(p.Days()))).
		Div(decimal.NewFromInt(100 * daysInYear))
}

// Engine computes month-end interest for an account.
type Engine struct {
	rules RuleBook
}

func NewEngine(rules RuleBook) *Engine {
	return &Engine{rules: rules}
}

// StartingBalance sums every transaction dated before day 1 of the month,
// regardless of the order the transactions were entered in.
func (e *Engine) StartingBalance(account *models.Account, year int, month time.Month) decimal.Decimal {
	first := models.FirstDayOfMonth(year, month)
	balance := decimal.Zero
	for _, txn := range account.Transactions {
		if txn.Date.Before(first) {
			balance = balance.Add(txn.SignedAmount())
		}
	}
	return balance
}

// SubPeriods splits the month at every distinct transaction date and every
// rule effective date inside it. Same-day transactions are folded into a
// single cut. A month without breakpoints yields one period for the whole
// month.
func (e *Engine) SubPeriods(account *models.Account, year int, month time.Month) []SubPeriod {
	current := models.FirstDayOfMonth(year, month)
	monthEnd := models.LastDayOfMonth(year, month)
	balance := e.StartingBalance(account, year, month)

	var rule *models.InterestRule
	if r, ok := e.rules.ApplicableRule(current); ok {
		rule = &r
	}

	var periods []SubPeriod
	for _, cut := range e.breakpoints(account, year, month) {
		if end := cut.AddDays(-1); !end.Before(current) {
			periods = append(periods, SubPeriod{Start: current, End: end, Balance: balance, Rule: rule})
		}

		for _, txn := range account.Transactions {
			if txn.Date == cut {
				balance = balance.Add(txn.SignedAmount())
			}
		}
		if r, ok := e.rules.RuleOn(cut); ok {
			rule = &r
		}
		current = cut
	}

	if !current.After(monthEnd) {
		periods = append(periods, SubPeriod{Start: current, End: monthEnd, Balance: balance, Rule: rule})
	}
	return periods
}

func (e *Engine) breakpoints(account *models.Account, year int, month time.Month) []models.Date {
	var dates []models.Date
	for _, txn := range account.Transactions {
		if models.InMonth(txn.Date, year, month) {
			dates = append(dates, txn.Date)
		}
	}
	for _, rule := range e.rules.RulesInMonth(year, month) {
		dates = append(dates, rule.Date)
	}
	slices.SortFunc(dates, models.CompareDates)
	return slices.Compact(dates)
}

// MonthlyInterest sums the interest of every sub-period and rounds the
// total, not the parts, to cents using banker's rounding.
func (e *Engine) MonthlyInterest(account *models.Account, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	periods := e.SubPeriods(account, year, month)
	for _, p := range periods {
		if p.Rule == nil {
			logger.Debug("sub-period has no interest rule", logger.Fields{
				"accountId": account.ID,
				"start":     models.FormatDate(p.Start),
				"end":       models.FormatDate(p.End),
			})
		}
		total = total.Add(p.Interest())
	}

	interest := total.RoundBank(2)
	logger.Debug("monthly interest calculated", logger.Fields{
		"accountId":  account.ID,
		"month":      models.FormatDate(models.FirstDayOfMonth(year, month))[:6],
		"subPeriods": len(periods),
		"interest":   interest.StringFixed(2),
	})
	return interest
}
