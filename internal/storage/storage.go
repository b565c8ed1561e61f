package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/mehmetgencv/expense-tracker/internal/config"
	"github.com/mehmetgencv/expense-tracker/internal/storage/sqlconfig"
)

type Storage struct {
	DB       *sql.DB
	Expenses sqlconfig.IExpenseTable
	Users    sqlconfig.IUserTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	expenses := sqlconfig.NewExpensesTable(db)
	users := sqlconfig.NewUsersTable(db)

	return &Storage{
		DB:       db,
		Expenses: &expenses,
		Users:    &users,
	}
}
