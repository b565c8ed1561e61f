package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents an expense record.
type Expense struct {
	ID            uuid.UUID       `db:"id"`
	OwnerID       uuid.UUID       `db:"owner_id"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	ExpenseDate   time.Time       `db:"expense_date"`
	PaymentMethod string          `db:"payment_method"`
	Category      string          `db:"category"`
	IsRecurring   bool            `db:"is_recurring"`
	CreateDate    time.Time       `db:"create_date"`
	UpdateDate    time.Time       `db:"update_date"`
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	OwnerID       uuid.UUID
	Description   string
	Amount        decimal.Decimal
	ExpenseDate   time.Time
	PaymentMethod string
	Category      string
	IsRecurring   bool
	CreateDate    time.Time
	UpdateDate    time.Time
}

// IExpenseTable defines the interface for expense storage operations.
// Every lookup is owner-scoped at the query level so no cross-owner row
// can ever be returned. This abstraction allows swapping the
// implementation (e.g. Bob) without changing callers.
type IExpenseTable interface {
	FindAllByOwner(ctx context.Context, owner uuid.UUID) ([]*Expense, error)
	FindByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (*Expense, error)
	FindByDateRangeAndOwner(ctx context.Context, owner uuid.UUID, start, end time.Time) ([]*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	Update(ctx context.Context, row *Expense) error
	Delete(ctx context.Context, id, owner uuid.UUID) (bool, error)
}
