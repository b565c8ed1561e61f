package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// YearlyReportInput is the Huma input for the yearly report.
type YearlyReportInput struct {
	Year int `query:"year" required:"true" doc:"Calendar year"`
}

// YearlyReportResponseBody is the response body for the yearly report.
type YearlyReportResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Caller-owned expenses dated within the year"`
}

// YearlyReportOutput is the Huma output for the yearly report.
type YearlyReportOutput struct {
	Body YearlyReportResponseBody
}

// yearlyReporter is the interface for the yearly report.
type yearlyReporter interface {
	YearlyReport(ctx context.Context, owner uuid.UUID, year int) ([]service.Expense, error)
}

// YearlyReportHandler handles GET /v1/expenses/reports/yearly.
type YearlyReportHandler struct {
	ExpenseService yearlyReporter
}

// NewYearlyReportHandler creates a new YearlyReportHandler.
func NewYearlyReportHandler(svc yearlyReporter) *YearlyReportHandler {
	return &YearlyReportHandler{ExpenseService: svc}
}

// Register registers the yearly report endpoint with the Huma API.
func (h *YearlyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "yearly-report",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/reports/yearly",
		Summary:     "Yearly report",
		Description: "Returns the caller's expenses for one calendar year.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *YearlyReportHandler) handle(ctx context.Context, input *YearlyReportInput) (*YearlyReportOutput, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := h.ExpenseService.YearlyReport(ctx, owner, input.Year)
	if err != nil {
		return nil, mapServiceError("failed to build yearly report", err)
	}

	return &YearlyReportOutput{Body: YearlyReportResponseBody{
		Expenses: convertExpenses(expenses),
	}}, nil
}
