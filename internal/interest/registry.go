package interest

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/interest-ledger/internal/interfaces"
	"github.com/sheikh-saqib/interest-ledger/internal/logger"
	"github.com/sheikh-saqib/interest-ledger/internal/models"
	"github.com/sheikh-saqib/interest-ledger/internal/models/events"
	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errors.New("invalid rate: must be greater than 0 and less than 100")

var maxRate = decimal.NewFromInt(100)

// Registry holds the full history of interest rules, at most one per
// effective date, kept sorted by date.
type Registry struct {
	rules     []models.InterestRule
	publisher interfaces.EventPublisher
}

// NewRegistry returns an empty registry. publisher may be nil.
func NewRegistry(publisher interfaces.EventPublisher) *Registry {
	return &Registry{publisher: publisher}
}

func (r *Registry) search(date models.Date) (int, bool) {
	return slices.BinarySearchFunc(r.rules, date, func(rule models.InterestRule, d models.Date) int {
		return models.CompareDates(rule.Date, d)
	})
}

// UpsertRule adds a rule effective from date, replacing whatever rule was
// defined on that exact date. Rates outside (0, 100) are rejected.
func (r *Registry) UpsertRule(date models.Date, ruleID string, rate decimal.Decimal) (models.InterestRule, error) {
	if rate.LessThanOrEqual(decimal.Zero) || rate.GreaterThanOrEqual(maxRate) {
		logger.Error("interest rule rejected", ErrInvalidRate, logger.Fields{
			"date":   models.FormatDate(date),
			"ruleId": ruleID,
			"rate":   rate.String(),
		})
		return models.InterestRule{}, ErrInvalidRate
	}

	rule := models.InterestRule{Date: date, RuleID: ruleID, Rate: rate}
	i, found := r.search(date)
	if found {
		r.rules[i] = rule
	} else {
		r.rules = slices.Insert(r.rules, i, rule)
	}

	logger.Info("interest rule defined", logger.Fields{
		"date":     models.FormatDate(date),
		"ruleId":   ruleID,
		"rate":     rate.StringFixed(2),
		"replaced": found,
	})
	if r.publisher != nil {
		err := r.publisher.Publish(events.TopicInterestRuleDefined, events.InterestRuleDefined{
			EventID:    uuid.New().String(),
			RuleID:     ruleID,
			Date:       models.FormatDate(date),
			Rate:       rate,
			Replaced:   found,
			OccurredAt: time.Now(),
		})
		if err != nil {
			logger.Error("publish event failed", err, logger.Fields{"topic": events.TopicInterestRuleDefined})
		}
	}
	return rule, nil
}

// ApplicableRule returns the rule with the latest effective date on or
// before date. ok is false when no rule has taken effect yet.
func (r *Registry) ApplicableRule(date models.Date) (rule models.InterestRule, ok bool) {
	i, found := r.search(date)
	if found {
		return r.rules[i], true
	}
	if i == 0 {
		return models.InterestRule{}, false
	}
	return r.rules[i-1], true
}

// RuleOn returns the rule whose effective date is exactly date.
func (r *Registry) RuleOn(date models.Date) (models.InterestRule, bool) {
	i, found := r.search(date)
	if !found {
		return models.InterestRule{}, false
	}
	return r.rules[i], true
}

// RulesInMonth returns the rules taking effect inside (year, month), by date.
func (r *Registry) RulesInMonth(year int, month time.Month) []models.InterestRule {
	start, _ := r.search(models.FirstDayOfMonth(year, month))
	var out []models.InterestRule
	for _, rule := range r.rules[start:] {
		if !models.InMonth(rule.Date, year, month) {
			break
		}
		out = append(out, rule)
	}
	return out
}

// Rules returns a copy of every rule in ascending date order.
func (r *Registry) Rules() []models.InterestRule {
	return slices.Clone(r.rules)
}
