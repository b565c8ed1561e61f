package expense

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// -- parseUpdateExpenseInput unit tests --

func TestParseUpdateExpenseInput_AllFields(t *testing.T) {
	description := "Dinner"
	amount := "30.00"
	date := "2024-03-02T19:00:00"
	method := "CREDIT_CARD"
	category := "ENTERTAINMENT"
	recurring := true

	input := &UpdateExpenseInput{
		Body: UpdateExpenseBody{
			Description:   &description,
			Amount:        &amount,
			Date:          &date,
			PaymentMethod: &method,
			Category:      &category,
			IsRecurring:   &recurring,
		},
	}

	update, err := parseUpdateExpenseInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "Dinner", *update.Description)
	assert.True(t, update.Amount.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, time.Date(2024, 3, 2, 19, 0, 0, 0, time.UTC), *update.Date)
	assert.Equal(t, service.PaymentMethodCreditCard, *update.PaymentMethod)
	assert.Equal(t, service.CategoryEntertainment, *update.Category)
	assert.True(t, *update.IsRecurring)
}

func TestParseUpdateExpenseInput_EmptyBody(t *testing.T) {
	update, err := parseUpdateExpenseInput(&UpdateExpenseInput{})

	assert.NoError(t, err)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.Amount)
	assert.Nil(t, update.Date)
	assert.Nil(t, update.PaymentMethod)
	assert.Nil(t, update.Category)
	assert.Nil(t, update.IsRecurring)
}

// -- HTTP integration tests --

func TestHTTP_UpdateExpense_PartialBody(t *testing.T) {
	updated := makeServiceExpense()
	newAmount := decimal.RequireFromString("99.99")
	updated.Amount = newAmount

	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, testCaller.ID, updated.ID,
		mock.MatchedBy(func(update service.ExpenseUpdate) bool {
			return update.Amount != nil && update.Amount.Equal(newAmount) &&
				update.Description == nil &&
				update.Date == nil &&
				update.PaymentMethod == nil &&
				update.Category == nil &&
				update.IsRecurring == nil
		})).Return(&updated, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/expenses/"+updated.ID.String(), authHeader,
		map[string]any{"amount": "99.99"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "99.99", body.Amount)
	assert.Equal(t, "Lunch", body.Description)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_NotFound(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Put("/v1/expenses/"+uuid.Must(uuid.NewV4()).String(), authHeader,
		map[string]any{"description": "changed"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateExpense_UnknownCategory(t *testing.T) {
	mockSvc := new(mockExpenseService)

	// Huma's enum tag rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Put("/v1/expenses/"+uuid.Must(uuid.NewV4()).String(), authHeader,
		map[string]any{"category": "GROCERIES"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}

func TestHTTP_UpdateExpense_InvalidDate(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Put("/v1/expenses/"+uuid.Must(uuid.NewV4()).String(), authHeader,
		map[string]any{"date": "02/03/2024"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}

func TestHTTP_UpdateExpense_MissingAuth(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Put("/v1/expenses/"+uuid.Must(uuid.NewV4()).String(),
		map[string]any{"description": "changed"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}
