package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// GetExpenseInput is the Huma input for fetching a single expense.
type GetExpenseInput struct {
	ID string `path:"id" format:"uuid" doc:"Expense UUID"`
}

// GetExpenseOutput is the Huma output for fetching a single expense.
type GetExpenseOutput struct {
	Body Expense
}

// expenseGetter is the interface for fetching one owned expense.
type expenseGetter interface {
	GetExpense(ctx context.Context, owner, id uuid.UUID) (*service.Expense, error)
}

// GetExpenseHandler handles GET /v1/expenses/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(svc expenseGetter) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc}
}

// Register registers the get expense endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/{id}",
		Summary:     "Get expense",
		Description: "Returns one expense owned by the caller.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	found, err := h.ExpenseService.GetExpense(ctx, owner, id)
	if err != nil {
		return nil, mapServiceError("failed to get expense", err)
	}

	return &GetExpenseOutput{Body: convertExpense(*found)}, nil
}
