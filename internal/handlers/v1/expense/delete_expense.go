package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	ID string `path:"id" format:"uuid" doc:"Expense UUID"`
}

// DeleteExpenseResponseBody reports whether a record was deleted.
type DeleteExpenseResponseBody struct {
	Deleted bool `json:"deleted" doc:"True when an owned expense was deleted, false when none existed"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct {
	Body DeleteExpenseResponseBody
}

// expenseDeleter is the interface for deleting an owned expense.
type expenseDeleter interface {
	DeleteExpense(ctx context.Context, owner, id uuid.UUID) (bool, error)
}

// DeleteExpenseHandler handles DELETE /v1/expenses/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/v1/expenses/{id}",
		Summary:     "Delete expense",
		Description: "Deletes an expense owned by the caller. Repeat deletes report deleted=false.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	deleted, err := h.ExpenseService.DeleteExpense(ctx, owner, id)
	if err != nil {
		return nil, mapServiceError("failed to delete expense", err)
	}

	return &DeleteExpenseOutput{Body: DeleteExpenseResponseBody{Deleted: deleted}}, nil
}
