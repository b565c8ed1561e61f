package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// MonthlyReportInput is the Huma input for the monthly report.
type MonthlyReportInput struct {
	Year  int `query:"year" required:"true" doc:"Calendar year"`
	Month int `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// MonthlyReportResponseBody is the response body for the monthly report.
type MonthlyReportResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Caller-owned expenses dated within the month"`
}

// MonthlyReportOutput is the Huma output for the monthly report.
type MonthlyReportOutput struct {
	Body MonthlyReportResponseBody
}

// monthlyReporter is the interface for the monthly report.
type monthlyReporter interface {
	MonthlyReport(ctx context.Context, owner uuid.UUID, year, month int) ([]service.Expense, error)
}

// MonthlyReportHandler handles GET /v1/expenses/reports/monthly.
type MonthlyReportHandler struct {
	ExpenseService monthlyReporter
}

// NewMonthlyReportHandler creates a new MonthlyReportHandler.
func NewMonthlyReportHandler(svc monthlyReporter) *MonthlyReportHandler {
	return &MonthlyReportHandler{ExpenseService: svc}
}

// Register registers the monthly report endpoint with the Huma API.
func (h *MonthlyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-report",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/reports/monthly",
		Summary:     "Monthly report",
		Description: "Returns the caller's expenses for one calendar month.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *MonthlyReportHandler) handle(ctx context.Context, input *MonthlyReportInput) (*MonthlyReportOutput, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := h.ExpenseService.MonthlyReport(ctx, owner, input.Year, input.Month)
	if err != nil {
		return nil, mapServiceError("failed to build monthly report", err)
	}

	return &MonthlyReportOutput{Body: MonthlyReportResponseBody{
		Expenses: convertExpenses(expenses),
	}}, nil
}
