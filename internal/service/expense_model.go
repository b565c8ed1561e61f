package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mehmetgencv/expense-tracker/internal/storage/sqlconfig"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID            uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	PaymentMethod PaymentMethod
	Category      ExpenseCategory
	IsRecurring   bool
	CreateDate    time.Time
	UpdateDate    time.Time
	Owner         uuid.UUID
}

// ExpenseCreate is the input for adding a new expense.
type ExpenseCreate struct {
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	PaymentMethod PaymentMethod
	Category      ExpenseCategory
	IsRecurring   bool
}

// ExpenseUpdate carries a partial update. Nil fields leave the current
// value untouched.
type ExpenseUpdate struct {
	Description   *string
	Amount        *decimal.Decimal
	Date          *time.Time
	PaymentMethod *PaymentMethod
	Category      *ExpenseCategory
	IsRecurring   *bool
}

// CategoryTotal is one line of a category report: how many expenses fell
// into the category within the window and what they add up to.
type CategoryTotal struct {
	Category    ExpenseCategory
	Count       int
	TotalAmount decimal.Decimal
}

func expenseFromStorage(row *sqlconfig.Expense) Expense {
	return Expense{
		ID:            row.ID,
		Description:   row.Description,
		Amount:        row.Amount,
		Date:          row.ExpenseDate,
		PaymentMethod: PaymentMethod(row.PaymentMethod),
		Category:      ExpenseCategory(row.Category),
		IsRecurring:   row.IsRecurring,
		CreateDate:    row.CreateDate,
		UpdateDate:    row.UpdateDate,
		Owner:         row.OwnerID,
	}
}

func expensesFromStorage(rows []*sqlconfig.Expense) []Expense {
	converted := make([]Expense, len(rows))
	for i, row := range rows {
		converted[i] = expenseFromStorage(row)
	}
	return converted
}

func expenseToStorage(e Expense) *sqlconfig.Expense {
	return &sqlconfig.Expense{
		ID:            e.ID,
		OwnerID:       e.Owner,
		Description:   e.Description,
		Amount:        e.Amount,
		ExpenseDate:   e.Date,
		PaymentMethod: string(e.PaymentMethod),
		Category:      string(e.Category),
		IsRecurring:   e.IsRecurring,
		CreateDate:    e.CreateDate,
		UpdateDate:    e.UpdateDate,
	}
}
