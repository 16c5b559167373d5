package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sheikh-saqib/interest-ledger/internal/logger"
)

const defaultBankName = "AwesomeGIC Bank"

type Config struct {
	BankName string
	LogLevel logger.Level
	// StatementActualMonthEnd dates the interest row on the real last day
	// of the month instead of day 30.
	StatementActualMonthEnd bool
}

func Load() (Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	level, err := logger.ParseLevel(getEnv("LOG_LEVEL", "error"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	actualMonthEnd, err := strconv.ParseBool(getEnv("STATEMENT_ACTUAL_MONTH_END", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("STATEMENT_ACTUAL_MONTH_END: %w", err)
	}

	bankName := strings.TrimSpace(getEnv("BANK_NAME", defaultBankName))
	if bankName == "" {
		bankName = defaultBankName
	}

	return Config{
		BankName:                bankName,
		LogLevel:                level,
		StatementActualMonthEnd: actualMonthEnd,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
