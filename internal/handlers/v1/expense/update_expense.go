package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// UpdateExpenseBody is the request body for a partial update. Absent
// fields leave the stored value untouched.
type UpdateExpenseBody struct {
	Description   *string `json:"description,omitempty" minLength:"1" doc:"Free-text label"`
	Amount        *string `json:"amount,omitempty" doc:"Decimal amount"`
	Date          *string `json:"date,omitempty" doc:"ISO-8601 local date-time the expense occurred"`
	PaymentMethod *string `json:"paymentMethod,omitempty" enum:"IBAN,CASH,CREDIT_CARD" doc:"Payment method"`
	Category      *string `json:"category,omitempty" enum:"FOOD,TRANSPORTATION,ENTERTAINMENT,SHOPPING,UTILITIES,HEALTH,OTHER" doc:"Expense category"`
	IsRecurring   *bool   `json:"isRecurring,omitempty" doc:"Recurring flag"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	ID   string `path:"id" format:"uuid" doc:"Expense UUID"`
	Body UpdateExpenseBody
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Body Expense
}

// expenseUpdater is the interface for partially updating an owned expense.
type expenseUpdater interface {
	UpdateExpense(ctx context.Context, owner, id uuid.UUID, update service.ExpenseUpdate) (*service.Expense, error)
}

// UpdateExpenseHandler handles PUT /v1/expenses/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/v1/expenses/{id}",
		Summary:     "Update expense",
		Description: "Applies a partial update to an expense owned by the caller.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

// parseUpdateExpenseInput parses present fields into the service-layer
// partial update.
func parseUpdateExpenseInput(input *UpdateExpenseInput) (service.ExpenseUpdate, error) {
	update := service.ExpenseUpdate{
		Description: input.Body.Description,
		IsRecurring: input.Body.IsRecurring,
	}

	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		update.Amount = &amount
	}
	if input.Body.Date != nil {
		date, err := time.Parse(service.DateTimeLayout, *input.Body.Date)
		if err != nil {
			return service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		update.Date = &date
	}
	if input.Body.PaymentMethod != nil {
		paymentMethod, err := service.ParsePaymentMethod(*input.Body.PaymentMethod)
		if err != nil {
			return service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid paymentMethod", err)
		}
		update.PaymentMethod = &paymentMethod
	}
	if input.Body.Category != nil {
		category, err := service.ParseExpenseCategory(*input.Body.Category)
		if err != nil {
			return service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid category", err)
		}
		update.Category = &category
	}

	return update, nil
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	update, err := parseUpdateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := h.ExpenseService.UpdateExpense(ctx, owner, id, update)
	if err != nil {
		return nil, mapServiceError("failed to update expense", err)
	}

	return &UpdateExpenseOutput{Body: convertExpense(*updated)}, nil
}
