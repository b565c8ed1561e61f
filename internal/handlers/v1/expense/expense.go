package expense

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mehmetgencv/expense-tracker/internal/handlers/v1/auth"
	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// Expense is the API response model for an expense.
// It is used only for responses, not for request bodies.
type Expense struct {
	ID            string `json:"id" doc:"Expense UUID"`
	Description   string `json:"description" doc:"Free-text label"`
	Amount        string `json:"amount" doc:"Decimal amount, positive means expenditure"`
	Date          string `json:"date" doc:"Occurrence date, ISO-8601 local date-time"`
	PaymentMethod string `json:"paymentMethod" doc:"Payment method"`
	Category      string `json:"category" doc:"Expense category"`
	IsRecurring   bool   `json:"isRecurring" doc:"Recurring flag, stored but not acted upon"`
	CreateDate    string `json:"createDate" doc:"RFC3339 creation audit stamp"`
	UpdateDate    string `json:"updateDate" doc:"RFC3339 last update audit stamp"`
}

func convertExpense(e service.Expense) Expense {
	return Expense{
		ID:            e.ID.String(),
		Description:   e.Description,
		Amount:        e.Amount.String(),
		Date:          e.Date.Format(service.DateTimeLayout),
		PaymentMethod: string(e.PaymentMethod),
		Category:      string(e.Category),
		IsRecurring:   e.IsRecurring,
		CreateDate:    e.CreateDate.Format(time.RFC3339),
		UpdateDate:    e.UpdateDate.Format(time.RFC3339),
	}
}

func convertExpenses(expenses []service.Expense) []Expense {
	converted := make([]Expense, len(expenses))
	for i, e := range expenses {
		converted[i] = convertExpense(e)
	}
	return converted
}

// callerID extracts the caller resolved by the auth middleware.
func callerID(ctx context.Context) (uuid.UUID, error) {
	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "missing caller identity")
	}
	return caller.ID, nil
}

// mapServiceError translates service failures into HTTP errors. Storage
// failures surface as 500 with the fallback message.
func mapServiceError(fallback string, err error) error {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "expense not found")
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
