package console

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sheikh-saqib/interest-ledger/internal/models"
	"github.com/shopspring/decimal"
)

var errInvalidFormat = errors.New("invalid input format")

// Decimals are plain fixed-point numbers of at most 28 integer and 28
// fractional digits. Exponent forms are rejected before parsing.
var decimalLexeme = regexp.MustCompile(`^[+-]?[0-9]{1,28}(\.[0-9]{1,28})?$`)

func parseDecimal(s string) (decimal.Decimal, error) {
	if !decimalLexeme.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: decimal %q", errInvalidFormat, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: decimal %q", errInvalidFormat, s)
	}
	return d, nil
}

type transactionInput struct {
	Date      models.Date
	AccountID string
	Type      models.TransactionType
	Amount    decimal.Decimal
}

type ruleInput struct {
	Date   models.Date
	RuleID string
	Rate   decimal.Decimal
}

type statementRequest struct {
	AccountID string
	Year      int
	Month     time.Month
}

// parseTransaction reads "<yyyyMMdd> <account> <D|W> <amount>".
func parseTransaction(line string) (transactionInput, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return transactionInput{}, fmt.Errorf("%w: expected 4 fields, got %d", errInvalidFormat, len(parts))
	}
	date, err := models.ParseDate(parts[0])
	if err != nil {
		return transactionInput{}, fmt.Errorf("%w: %v", errInvalidFormat, err)
	}
	txnType, err := models.ParseTransactionType(parts[2])
	if err != nil {
		return transactionInput{}, fmt.Errorf("%w: %v", errInvalidFormat, err)
	}
	amount, err := parseAmount(parts[3])
	if err != nil {
		return transactionInput{}, err
	}
	return transactionInput{Date: date, AccountID: parts[1], Type: txnType, Amount: amount}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := parseDecimal(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be greater than zero", errInvalidFormat)
	}
	if !amount.Equal(amount.Truncate(2)) {
		return decimal.Decimal{}, fmt.Errorf("%w: amount has more than 2 decimal places", errInvalidFormat)
	}
	return amount, nil
}

// parseRule reads "<yyyyMMdd> <ruleId> <rate>". The range check is left to
// the registry so both paths report the same error.
func parseRule(line string) (ruleInput, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return ruleInput{}, fmt.Errorf("%w: expected 3 fields, got %d", errInvalidFormat, len(parts))
	}
	date, err := models.ParseDate(parts[0])
	if err != nil {
		return ruleInput{}, fmt.Errorf("%w: %v", errInvalidFormat, err)
	}
	rate, err := parseDecimal(parts[2])
	if err != nil {
		return ruleInput{}, err
	}
	return ruleInput{Date: date, RuleID: parts[1], Rate: rate}, nil
}

// parseStatementRequest reads "<account> <yyyyMM>".
func parseStatementRequest(line string) (statementRequest, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 || len(parts[1]) != 6 || strings.Trim(parts[1], "0123456789") != "" {
		return statementRequest{}, errInvalidFormat
	}
	year, err := strconv.Atoi(parts[1][:4])
	if err != nil {
		return statementRequest{}, errInvalidFormat
	}
	month, err := strconv.Atoi(parts[1][4:])
	if err != nil || month < 1 || month > 12 {
		return statementRequest{}, errInvalidFormat
	}
	return statementRequest{AccountID: parts[0], Year: year, Month: time.Month(month)}, nil
}
