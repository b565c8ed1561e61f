package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// CategoryReportInput is the Huma input for the category report.
type CategoryReportInput struct {
	StartDate string `query:"startDate" required:"true" doc:"Inclusive start, ISO-8601 local date-time"`
	EndDate   string `query:"endDate" required:"true" doc:"Exclusive end, ISO-8601 local date-time"`
}

// CategoryTotal is one aggregated line of the category report.
type CategoryTotal struct {
	Category    string `json:"category" doc:"Expense category"`
	Count       int    `json:"count" doc:"Number of matching expenses"`
	TotalAmount string `json:"totalAmount" doc:"Decimal sum of matching amounts"`
}

// CategoryReportResponseBody is the response body for the category report.
type CategoryReportResponseBody struct {
	Totals []CategoryTotal `json:"totals" doc:"Per-category totals, categories with no matches omitted"`
}

// CategoryReportOutput is the Huma output for the category report.
type CategoryReportOutput struct {
	Body CategoryReportResponseBody
}

// categoryReporter is the interface for the category report.
type categoryReporter interface {
	CategoryReport(ctx context.Context, owner uuid.UUID, startDate, endDate string) ([]service.CategoryTotal, error)
}

// CategoryReportHandler handles GET /v1/expenses/reports/category.
type CategoryReportHandler struct {
	ExpenseService categoryReporter
}

// NewCategoryReportHandler creates a new CategoryReportHandler.
func NewCategoryReportHandler(svc categoryReporter) *CategoryReportHandler {
	return &CategoryReportHandler{ExpenseService: svc}
}

// Register registers the category report endpoint with the Huma API.
func (h *CategoryReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-report",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/reports/category",
		Summary:     "Category report",
		Description: "Groups the caller's expenses in [startDate, endDate) by category.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *CategoryReportHandler) handle(ctx context.Context, input *CategoryReportInput) (*CategoryReportOutput, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := h.ExpenseService.CategoryReport(ctx, owner, input.StartDate, input.EndDate)
	if err != nil {
		return nil, mapServiceError("failed to build category report", err)
	}

	resp := CategoryReportResponseBody{
		Totals: make([]CategoryTotal, len(totals)),
	}
	for i, total := range totals {
		resp.Totals[i] = CategoryTotal{
			Category:    string(total.Category),
			Count:       total.Count,
			TotalAmount: total.TotalAmount.String(),
		}
	}

	return &CategoryReportOutput{Body: resp}, nil
}
