package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mehmetgencv/expense-tracker/internal/logging"
	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// ExpensesBetweenInput is the Huma input for a date-range query. The
// window is half-open: start inclusive, end exclusive.
type ExpensesBetweenInput struct {
	StartDate string `query:"startDate" required:"true" doc:"Inclusive start, ISO-8601 local date-time"`
	EndDate   string `query:"endDate" required:"true" doc:"Exclusive end, ISO-8601 local date-time"`
}

// ExpensesBetweenResponseBody is the response body for a date-range query.
type ExpensesBetweenResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Caller-owned expenses dated within the window"`
}

// ExpensesBetweenOutput is the Huma output for a date-range query.
type ExpensesBetweenOutput struct {
	Body ExpensesBetweenResponseBody
}

// expenseRangeQuerier is the interface for date-range queries.
type expenseRangeQuerier interface {
	ExpensesBetween(ctx context.Context, owner uuid.UUID, startDate, endDate string) ([]service.Expense, error)
}

// ExpensesBetweenHandler handles GET /v1/expenses/between.
type ExpensesBetweenHandler struct {
	ExpenseService expenseRangeQuerier
}

// NewExpensesBetweenHandler creates a new ExpensesBetweenHandler.
func NewExpensesBetweenHandler(svc expenseRangeQuerier) *ExpensesBetweenHandler {
	return &ExpensesBetweenHandler{ExpenseService: svc}
}

// Register registers the date-range endpoint with the Huma API.
func (h *ExpensesBetweenHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "expenses-between",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/between",
		Summary:     "Expenses between dates",
		Description: "Returns caller-owned expenses dated in [startDate, endDate).",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ExpensesBetweenHandler) handle(ctx context.Context, input *ExpensesBetweenInput) (*ExpensesBetweenOutput, error) {
	logData := logging.GetLogData(ctx)

	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := h.ExpenseService.ExpensesBetween(ctx, owner, input.StartDate, input.EndDate)
	if err != nil {
		return nil, mapServiceError("failed to query expenses", err)
	}

	if logData != nil {
		logData.AddData("expenseCount", len(expenses))
	}

	return &ExpensesBetweenOutput{Body: ExpensesBetweenResponseBody{
		Expenses: convertExpenses(expenses),
	}}, nil
}
