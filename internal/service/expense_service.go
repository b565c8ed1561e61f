package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mehmetgencv/expense-tracker/internal/storage"
	"github.com/mehmetgencv/expense-tracker/internal/storage/sqlconfig"
)

// DateTimeLayout is the wire format for caller-supplied range bounds,
// an ISO-8601 local date-time without zone offset.
const DateTimeLayout = "2006-01-02T15:04:05"

// ExpenseService handles expense lifecycle and reporting. It is the
// sole place ownership is checked: every operation takes the resolved
// caller identity and scopes all storage access to it.
type ExpenseService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store, now: time.Now}
}

// ListExpenses returns every expense owned by the caller.
func (s *ExpenseService) ListExpenses(ctx context.Context, owner uuid.UUID) ([]Expense, error) {
	rows, err := s.storage.Expenses.FindAllByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return expensesFromStorage(rows), nil
}

// GetExpense returns the expense with the given id iff the caller owns
// it, ErrNotFound otherwise.
func (s *ExpenseService) GetExpense(ctx context.Context, owner, id uuid.UUID) (*Expense, error) {
	row, err := s.storage.Expenses.FindByIDAndOwner(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	converted := expenseFromStorage(row)
	return &converted, nil
}

// AddExpense persists a new expense owned by the caller. Description,
// amount and date are required. Audit stamps are set here, never by the
// caller.
func (s *ExpenseService) AddExpense(ctx context.Context, owner uuid.UUID, create ExpenseCreate) (*Expense, error) {
	if create.Description == "" {
		return nil, newValidationError("description", "required")
	}
	if create.Amount.IsZero() {
		return nil, newValidationError("amount", "required")
	}
	if create.Date.IsZero() {
		return nil, newValidationError("date", "required")
	}

	now := s.now()
	row, err := s.storage.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		OwnerID:       owner,
		Description:   create.Description,
		Amount:        create.Amount,
		ExpenseDate:   create.Date,
		PaymentMethod: string(create.PaymentMethod),
		Category:      string(create.Category),
		IsRecurring:   create.IsRecurring,
		CreateDate:    now,
		UpdateDate:    now,
	})
	if err != nil {
		return nil, err
	}
	converted := expenseFromStorage(row)
	return &converted, nil
}

// UpdateExpense applies a partial update to an owned expense. Fields
// absent from the update keep their prior value; id, owner and
// createDate are never altered. UpdateDate is refreshed.
func (s *ExpenseService) UpdateExpense(ctx context.Context, owner, id uuid.UUID, update ExpenseUpdate) (*Expense, error) {
	current, err := s.GetExpense(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	merged := mergeExpense(*current, update)
	merged.UpdateDate = s.now()

	if err := s.storage.Expenses.Update(ctx, expenseToStorage(merged)); err != nil {
		return nil, err
	}
	return &merged, nil
}

// DeleteExpense deletes an owned expense. Reports false, not an error,
// when no such owned record existed, so repeat deletes are harmless.
func (s *ExpenseService) DeleteExpense(ctx context.Context, owner, id uuid.UUID) (bool, error) {
	return s.storage.Expenses.Delete(ctx, id, owner)
}

// ExpensesBetween returns the caller's expenses dated in [start, end).
// The bounds arrive as ISO-8601 local date-time strings.
func (s *ExpenseService) ExpensesBetween(ctx context.Context, owner uuid.UUID, startDate, endDate string) ([]Expense, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.expensesInWindow(ctx, owner, start, end)
}

// MonthlyReport returns the caller's expenses for the calendar month,
// the window [first instant of month, first instant of next month).
func (s *ExpenseService) MonthlyReport(ctx context.Context, owner uuid.UUID, year, month int) ([]Expense, error) {
	if month < 1 || month > 12 {
		return nil, newValidationError("month", "must be between 1 and 12")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return s.expensesInWindow(ctx, owner, start, start.AddDate(0, 1, 0))
}

// YearlyReport returns the caller's expenses for the calendar year.
func (s *ExpenseService) YearlyReport(ctx context.Context, owner uuid.UUID, year int) ([]Expense, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return s.expensesInWindow(ctx, owner, start, start.AddDate(1, 0, 0))
}

// CategoryReport groups the caller's expenses in [start, end) by
// category. Categories with no matching expense are omitted; the result
// is sorted ascending by category name.
func (s *ExpenseService) CategoryReport(ctx context.Context, owner uuid.UUID, startDate, endDate string) ([]CategoryTotal, error) {
	expenses, err := s.ExpensesBetween(ctx, owner, startDate, endDate)
	if err != nil {
		return nil, err
	}

	totals := make(map[ExpenseCategory]*CategoryTotal)
	for _, expense := range expenses {
		total, ok := totals[expense.Category]
		if !ok {
			total = &CategoryTotal{Category: expense.Category, TotalAmount: decimal.Zero}
			totals[expense.Category] = total
		}
		total.Count++
		total.TotalAmount = total.TotalAmount.Add(expense.Amount)
	}

	report := make([]CategoryTotal, 0, len(totals))
	for _, total := range totals {
		report = append(report, *total)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].Category < report[j].Category
	})
	return report, nil
}

func (s *ExpenseService) expensesInWindow(ctx context.Context, owner uuid.UUID, start, end time.Time) ([]Expense, error) {
	rows, err := s.storage.Expenses.FindByDateRangeAndOwner(ctx, owner, start, end)
	if err != nil {
		return nil, err
	}
	return expensesFromStorage(rows), nil
}

func parseDateRange(startDate, endDate string) (start, end time.Time, err error) {
	start, err = time.Parse(DateTimeLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("startDate", "must be an ISO-8601 date-time")
	}
	end, err = time.Parse(DateTimeLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("endDate", "must be an ISO-8601 date-time")
	}
	return start, end, nil
}
