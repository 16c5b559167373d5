package main

import (
	"context"
	"log"
	"os"

	"github.com/sheikh-saqib/interest-ledger/internal/config"
	"github.com/sheikh-saqib/interest-ledger/internal/console"
	"github.com/sheikh-saqib/interest-ledger/internal/events/journal"
	interfaces "github.com/sheikh-saqib/interest-ledger/internal/interfaces"
	"github.com/sheikh-saqib/interest-ledger/internal/interest"
	"github.com/sheikh-saqib/interest-ledger/internal/ledger"
	"github.com/sheikh-saqib/interest-ledger/internal/logger"
	"github.com/sheikh-saqib/interest-ledger/internal/statement"
	"github.com/sheikh-saqib/interest-ledger/internal/storage/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.LogLevel)

	// main owns the store, registry and journal; everything else borrows them
	var store interfaces.LedgerStore = memory.NewMemoryLedgerStore()
	publisher := journal.NewPublisher()
	registry := interest.NewRegistry(publisher)

	ledgerService := ledger.NewLedger(store, publisher)
	engine := interest.NewEngine(registry)
	formatter := statement.NewFormatter(engine, cfg.StatementActualMonthEnd)

	app := console.New(cfg.BankName, ledgerService, registry, formatter, os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		logger.Error("console stopped", err, nil)
		os.Exit(1)
	}

	logger.Info("session closed", logger.Fields{
		"accounts": len(store.ListAccounts()),
		"events":   len(publisher.Messages()),
	})
}
