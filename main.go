package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"ubank/account"
	"ubank/auth"
	"ubank/config"
	"ubank/console"
	"ubank/transactions"
)

func main() {
	// Environment variables win over an optional ./.env file.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	hasher, err := auth.NewHasher(cfg.PasswordHashCost)
	if err != nil {
		logger.Fatal("cannot create password hasher", zap.Error(err))
	}

	// State lives for the process only; nothing is flushed on exit.
	transactionService := transactions.NewService(transactions.NewLog(), logger)
	accountService := account.NewService(
		account.NewStore(),
		transactionService,
		hasher,
		account.WithOpeningBalance(cfg.OpeningBalance),
		account.WithLogger(logger),
	)

	logger.Info("starting console", zap.Int64("opening_balance", cfg.OpeningBalance))
	app := console.New(os.Stdin, os.Stdout, accountService, transactionService, logger)
	if err := app.Run(); err != nil {
		logger.Error("console stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
