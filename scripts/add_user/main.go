package main

import (
	"context"
	"flag"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/mehmetgencv/expense-tracker/internal/config"
	"github.com/mehmetgencv/expense-tracker/internal/logging"
	"github.com/mehmetgencv/expense-tracker/internal/storage"
	"github.com/mehmetgencv/expense-tracker/internal/storage/sqlconfig"
)

// Provisions a user with a fresh API token. Tokens are opaque strings;
// callers authenticate with "Authorization: Bearer <token>".
func main() {
	logger := logging.SetupLogging()

	username := flag.String("username", "", "username for the new user")
	email := flag.String("email", "", "email for the new user")
	flag.Parse()

	if *username == "" {
		logger.Fatal("username is required")
		return
	}

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(env)

	token := uuid.Must(uuid.NewV4()).String()
	user, err := dbStorage.Users.Insert(context.Background(), &sqlconfig.UserCreate{
		Username: *username,
		Email:    *email,
		APIToken: token,
	})
	if err != nil {
		logger.WithError(err).Fatal("Users.Insert")
		return
	}

	logger.WithFields(logrus.Fields{
		"id":       user.ID.String(),
		"username": user.Username,
		"apiToken": user.APIToken,
	}).Info("user created")
}
