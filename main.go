package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mehmetgencv/expense-tracker/api"
	"github.com/mehmetgencv/expense-tracker/internal/config"
	"github.com/mehmetgencv/expense-tracker/internal/logging"
	"github.com/mehmetgencv/expense-tracker/internal/service"
	"github.com/mehmetgencv/expense-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("expense-tracker starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
