package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger/internal/commands"
	"github.com/carson-networks/ledger/internal/config"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator"
	"github.com/carson-networks/ledger/internal/service"
	"github.com/carson-networks/ledger/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.SetupLogging()

	envConfig, err := config.ProcessEnvironmentVariables(logger)
	if err != nil {
		logger.WithError(err).Error("config.ProcessEnvironmentVariables")
		return 1
	}

	level, err := logrus.ParseLevel(envConfig.LogLevel)
	if err != nil {
		logger.WithError(err).Error("logrus.ParseLevel")
		return 1
	}
	logger.SetLevel(level)

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Error("storage.NewStorage")
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Warn("storage.Close")
		}
	}()

	ctx := context.Background()
	ledger := service.NewLedgerService(ctx, store, logger)

	delegator := operator.NewOperatorDelegator(ledger, logger)
	delegator.Start()
	defer delegator.Stop()

	cmds := &commands.Commands{
		Logger:   logger,
		Operator: delegator,
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		Backend:  envConfig.Storage,
	}
	if err := cmds.Run(ctx, os.Args); err != nil {
		return 1
	}
	return 0
}
