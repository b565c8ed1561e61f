package service

import (
	"github.com/mehmetgencv/expense-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
	Users   *UserService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Expense: NewExpenseService(store),
		Users:   NewUserService(store),
	}
}
