package expense

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/mehmetgencv/expense-tracker/internal/handlers/v1/auth"
	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// mockExpenseService is a mock covering every handler's service interface.
type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, owner uuid.UUID) ([]service.Expense, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func (m *mockExpenseService) GetExpense(ctx context.Context, owner, id uuid.UUID) (*service.Expense, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Expense), args.Error(1)
}

func (m *mockExpenseService) AddExpense(ctx context.Context, owner uuid.UUID, create service.ExpenseCreate) (*service.Expense, error) {
	args := m.Called(ctx, owner, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Expense), args.Error(1)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, owner, id uuid.UUID, update service.ExpenseUpdate) (*service.Expense, error) {
	args := m.Called(ctx, owner, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Expense), args.Error(1)
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, owner, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, owner, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockExpenseService) ExpensesBetween(ctx context.Context, owner uuid.UUID, startDate, endDate string) ([]service.Expense, error) {
	args := m.Called(ctx, owner, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func (m *mockExpenseService) MonthlyReport(ctx context.Context, owner uuid.UUID, year, month int) ([]service.Expense, error) {
	args := m.Called(ctx, owner, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func (m *mockExpenseService) YearlyReport(ctx context.Context, owner uuid.UUID, year int) ([]service.Expense, error) {
	args := m.Called(ctx, owner, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func (m *mockExpenseService) CategoryReport(ctx context.Context, owner uuid.UUID, startDate, endDate string) ([]service.CategoryTotal, error) {
	args := m.Called(ctx, owner, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CategoryTotal), args.Error(1)
}

// stubDirectory resolves exactly one token to the test caller.
type stubDirectory struct {
	caller *service.User
}

func (d *stubDirectory) Resolve(ctx context.Context, token string) (*service.User, error) {
	if token != testToken {
		return nil, service.ErrUnauthorized
	}
	return d.caller, nil
}

const (
	testToken  = "valid-token"
	authHeader = "Authorization: Bearer valid-token"
)

var testCaller = &service.User{
	ID:       uuid.Must(uuid.NewV4()),
	Username: "alice",
	Email:    "alice@example.com",
}

// newTestAPI registers every expense handler behind the auth middleware
// against a humatest API and returns it.
func newTestAPI(t *testing.T, svc *mockExpenseService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.NewMiddleware(api, &stubDirectory{caller: testCaller}))
	NewCreateExpenseHandler(svc).Register(api)
	NewListExpensesHandler(svc).Register(api)
	// humatest's flow router matches in registration order, so the static
	// /v1/expenses/between route must precede the /v1/expenses/{id} routes
	// (production's ServeMux resolves this by specificity instead).
	NewExpensesBetweenHandler(svc).Register(api)
	NewGetExpenseHandler(svc).Register(api)
	NewUpdateExpenseHandler(svc).Register(api)
	NewDeleteExpenseHandler(svc).Register(api)
	NewMonthlyReportHandler(svc).Register(api)
	NewYearlyReportHandler(svc).Register(api)
	NewCategoryReportHandler(svc).Register(api)
	return api
}

func makeServiceExpense() service.Expense {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return service.Expense{
		ID:            uuid.Must(uuid.NewV4()),
		Description:   "Lunch",
		Amount:        decimal.RequireFromString("12.50"),
		Date:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		PaymentMethod: service.PaymentMethodCash,
		Category:      service.CategoryFood,
		IsRecurring:   false,
		CreateDate:    created,
		UpdateDate:    created,
		Owner:         testCaller.ID,
	}
}
