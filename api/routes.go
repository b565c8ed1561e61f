package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/mehmetgencv/expense-tracker/internal/handlers/v1/auth"
	"github.com/mehmetgencv/expense-tracker/internal/handlers/v1/expense"
	"github.com/mehmetgencv/expense-tracker/internal/handlers/v1/status"
	"github.com/mehmetgencv/expense-tracker/internal/logging"
	"github.com/mehmetgencv/expense-tracker/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("expense-tracker", "1.0.0"))
	humaAPI.UseMiddleware(auth.NewMiddleware(humaAPI, r.Service.Users))

	expense.NewCreateExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewListExpensesHandler(r.Service.Expense).Register(humaAPI)
	expense.NewGetExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewUpdateExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewDeleteExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewExpensesBetweenHandler(r.Service.Expense).Register(humaAPI)
	expense.NewMonthlyReportHandler(r.Service.Expense).Register(humaAPI)
	expense.NewYearlyReportHandler(r.Service.Expense).Register(humaAPI)
	expense.NewCategoryReportHandler(r.Service.Expense).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.Middleware(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
