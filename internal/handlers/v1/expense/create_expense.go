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

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	Description   string `json:"description" required:"true" minLength:"1" doc:"Free-text label"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount"`
	Date          string `json:"date" required:"true" doc:"ISO-8601 local date-time the expense occurred"`
	PaymentMethod string `json:"paymentMethod" required:"true" enum:"IBAN,CASH,CREDIT_CARD" doc:"Payment method"`
	Category      string `json:"category" required:"true" enum:"FOOD,TRANSPORTATION,ENTERTAINMENT,SHOPPING,UTILITIES,HEALTH,OTHER" doc:"Expense category"`
	IsRecurring   bool   `json:"isRecurring" doc:"Recurring flag, stored but not acted upon"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Body Expense
}

// expenseCreator is the interface for adding expenses.
type expenseCreator interface {
	AddExpense(ctx context.Context, owner uuid.UUID, create service.ExpenseCreate) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /v1/expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expenses",
		Summary:       "Create expense",
		Description:   "Creates a new expense owned by the caller.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateExpenseInput parses and validates the API input into the
// service-layer create request.
func parseCreateExpenseInput(input *CreateExpenseInput) (service.ExpenseCreate, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	date, err := time.Parse(service.DateTimeLayout, input.Body.Date)
	if err != nil {
		return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}
	paymentMethod, err := service.ParsePaymentMethod(input.Body.PaymentMethod)
	if err != nil {
		return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid paymentMethod", err)
	}
	category, err := service.ParseExpenseCategory(input.Body.Category)
	if err != nil {
		return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid category", err)
	}

	return service.ExpenseCreate{
		Description:   input.Body.Description,
		Amount:        amount,
		Date:          date,
		PaymentMethod: paymentMethod,
		Category:      category,
		IsRecurring:   input.Body.IsRecurring,
	}, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	create, err := parseCreateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.ExpenseService.AddExpense(ctx, owner, create)
	if err != nil {
		return nil, mapServiceError("failed to create expense", err)
	}

	return &CreateExpenseOutput{Body: convertExpense(*created)}, nil
}
