package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-analysis/api"
	"github.com/carson-networks/budget-analysis/internal/config"
	"github.com/carson-networks/budget-analysis/internal/logging"
	"github.com/carson-networks/budget-analysis/internal/operator"
	"github.com/carson-networks/budget-analysis/internal/service"
	"github.com/carson-networks/budget-analysis/internal/storage"
)

func main() {
	logrus.Info("budget-analysis starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger, err := logging.SetupLoggingWithLevel(envConfig.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("logging.SetupLoggingWithLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(envConfig.AnalysisWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage.Snapshots(), delegator, envConfig.HistoryMonths, envConfig.AnalysisTimeout)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Service:  svc,
		Operator: delegator,
	}
	httpRest.Serve(ctx)
}
