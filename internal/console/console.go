// Package console runs the line-oriented banking menu. It owns no state;
// every command is handed to the ledger, the rule registry or the
// statement formatter and runs to completion before the next line is read.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sheikh-saqib/interest-ledger/internal/interest"
	"github.com/sheikh-saqib/interest-ledger/internal/ledger"
	"github.com/sheikh-saqib/interest-ledger/internal/logger"
	"github.com/sheikh-saqib/interest-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const (
	transactionPrompt = "Please enter transaction details in <Date> <Account> <Type> <Amount> format (or enter blank to go back to main menu):"
	rulePrompt        = "Please enter interest rules details in <Date> <RuleId> <Rate in %> format (or enter blank to go back to main menu):"
	statementPrompt   = "Please enter account and month to generate the statement <Account> <Year><Month> (or enter blank to go back to main menu):"

	msgInvalidChoice    = "Invalid choice. Please try again."
	msgInvalidInput     = "Invalid input format. Please try again."
	msgInvalidStatement = "Invalid format. Please enter <Account> <Year><Month>."
	msgAccountMissing   = "Account does not exist."
	msgInvalidRate      = "Invalid rate. Rate must be greater than 0 and less than 100."
	msgFirstWithdrawal  = "The first transaction on an account cannot be a withdrawal."
	msgInsufficient     = "Insufficient balance. Transaction rejected."

	maxLineLength = 64 * 1024
)

var errLineTooLong = errors.New("input line too long")

// Ledger is the recorder side used by the T and P commands.
type Ledger interface {
	RecordTransaction(ctx context.Context, date models.Date, accountID string, txnType models.TransactionType, amount decimal.Decimal) (models.Transaction, error)
	GetAccount(accountID string) (*models.Account, error)
}

// Rules is the registry side used by the I command.
type Rules interface {
	UpsertRule(date models.Date, ruleID string, rate decimal.Decimal) (models.InterestRule, error)
	Rules() []models.InterestRule
}

// Printer renders statements and rule listings.
type Printer interface {
	Statement(account *models.Account) string
	MonthlyStatement(account *models.Account, year int, month time.Month) string
	InterestRules(rules []models.InterestRule) string
}

type Console struct {
	bankName string
	ledger   Ledger
	rules    Rules
	printer  Printer
	in       *bufio.Reader
	out      io.Writer
}

func New(bankName string, l Ledger, rules Rules, printer Printer, in io.Reader, out io.Writer) *Console {
	return &Console{
		bankName: bankName,
		ledger:   l,
		rules:    rules,
		printer:  printer,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run shows the main menu until Q is chosen or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printf("Welcome to %s! What would you like to do?\n", c.bankName)
		c.println("[T] Input transactions")
		c.println("[I] Define interest rules")
		c.println("[P] Print statement")
		c.println("[Q] Quit")
		c.printf("> ")

		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil && !errors.Is(err, errLineTooLong) {
			return err
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "T":
			c.inputTransactions(ctx)
		case "I":
			c.defineRules()
		case "P":
			c.printStatement()
		case "Q":
			c.printf("Thank you for banking with %s.\nHave a nice day!\n", c.bankName)
			return nil
		default:
			c.println(msgInvalidChoice)
		}
	}
}

func (c *Console) inputTransactions(ctx context.Context) {
	for {
		c.println(transactionPrompt)
		line, err := c.readLine()
		if errors.Is(err, errLineTooLong) {
			c.println(msgInvalidInput)
			continue
		}
		if err != nil || strings.TrimSpace(line) == "" {
			return
		}

		in, err := parseTransaction(line)
		if err != nil {
			logger.Debug("transaction input rejected", logger.Fields{"line": line, "reason": err.Error()})
			c.println(msgInvalidInput)
			continue
		}

		if _, err := c.ledger.RecordTransaction(ctx, in.Date, in.AccountID, in.Type, in.Amount); err != nil {
			c.println(transactionErrorMessage(err))
			continue
		}

		account, err := c.ledger.GetAccount(in.AccountID)
		if err != nil {
			c.println(msgAccountMissing)
			continue
		}
		c.printf("%s", c.printer.Statement(account))
	}
}

func transactionErrorMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrFirstTransactionWithdrawal):
		return msgFirstWithdrawal
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return msgInsufficient
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, models.ErrInvalidTransactionType):
		return msgInvalidInput
	default:
		logger.Error("record transaction failed", err, nil)
		return "Transaction failed: " + err.Error()
	}
}

func (c *Console) defineRules() {
	for {
		c.println(rulePrompt)
		line, err := c.readLine()
		if errors.Is(err, errLineTooLong) {
			c.println(msgInvalidInput)
			continue
		}
		if err != nil || strings.TrimSpace(line) == "" {
			return
		}

		in, err := parseRule(line)
		if err != nil {
			logger.Debug("interest rule input rejected", logger.Fields{"line": line, "reason": err.Error()})
			c.println(msgInvalidInput)
			continue
		}

		if _, err := c.rules.UpsertRule(in.Date, in.RuleID, in.Rate); err != nil {
			if errors.Is(err, interest.ErrInvalidRate) {
				c.println(msgInvalidRate)
			} else {
				c.println("Interest rule rejected: " + err.Error())
			}
			continue
		}
		c.printf("%s", c.printer.InterestRules(c.rules.Rules()))
	}
}

func (c *Console) printStatement() {
	c.printf("%s ", statementPrompt)
	line, err := c.readLine()
	if errors.Is(err, errLineTooLong) {
		c.println(msgInvalidStatement)
		return
	}
	if err != nil || strings.TrimSpace(line) == "" {
		return
	}

	req, err := parseStatementRequest(line)
	if err != nil {
		c.println(msgInvalidStatement)
		return
	}

	account, err := c.ledger.GetAccount(req.AccountID)
	if err != nil {
		c.println(msgAccountMissing)
		return
	}
	c.printf("%s", c.printer.MonthlyStatement(account, req.Year, req.Month))
}

// readLine returns the next line without its terminator. A line longer
// than maxLineLength is consumed in full and reported as errLineTooLong.
func (c *Console) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineLength {
				tooLong, line = true, nil
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return string(line), nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
