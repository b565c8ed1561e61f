package expense

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

func TestHTTP_CategoryReport_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("CategoryReport", mock.Anything, testCaller.ID, "2024-01-01T00:00:00", "2025-01-01T00:00:00").
		Return([]service.CategoryTotal{
			{Category: service.CategoryFood, Count: 2, TotalAmount: decimal.RequireFromString("25.0")},
			{Category: service.CategoryTransportation, Count: 1, TotalAmount: decimal.RequireFromString("5.0")},
		}, nil)

	resp := newTestAPI(t, mockSvc).Get(
		"/v1/expenses/reports/category?startDate=2024-01-01T00:00:00&endDate=2025-01-01T00:00:00", authHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CategoryReportResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Totals, 2)
	assert.Equal(t, "FOOD", body.Totals[0].Category)
	assert.Equal(t, 2, body.Totals[0].Count)
	assert.Equal(t, "25", body.Totals[0].TotalAmount)
	assert.Equal(t, "TRANSPORTATION", body.Totals[1].Category)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CategoryReport_EmptyWindow(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("CategoryReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]service.CategoryTotal{}, nil)

	resp := newTestAPI(t, mockSvc).Get(
		"/v1/expenses/reports/category?startDate=2024-01-01T00:00:00&endDate=2024-01-02T00:00:00", authHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CategoryReportResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Totals)
}

func TestHTTP_CategoryReport_MalformedDate(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("CategoryReport", mock.Anything, mock.Anything, "yesterday", "2025-01-01T00:00:00").
		Return(nil, &service.ValidationError{Field: "startDate", Reason: "must be an ISO-8601 date-time"})

	resp := newTestAPI(t, mockSvc).Get(
		"/v1/expenses/reports/category?startDate=yesterday&endDate=2025-01-01T00:00:00", authHeader)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CategoryReport_MissingAuth(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Get(
		"/v1/expenses/reports/category?startDate=2024-01-01T00:00:00&endDate=2025-01-01T00:00:00")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "CategoryReport")
}
