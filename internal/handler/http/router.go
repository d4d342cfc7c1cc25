package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/config"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/middleware"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Contract   ContractHandler
	Sanction   SanctionHandler
	Incident   IncidentHandler
	Loan       LoanHandler
	Inventory  InventoryHandler
	Product    ProductHandler
	Shift      ShiftHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Master     MasterHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "genisa-erp"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermViewEmployees)).Get("/", h.Employee.List)
				r.With(middleware.RequirePermission(user.PermViewEmployees)).Get("/{employeeID}", h.Employee.GetByID)
				r.With(middleware.RequirePermission(user.PermViewEmployees)).Get("/{employeeID}/details", h.Employee.GetDetails)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageEmployees))
					r.Post("/", h.Employee.Create)
					r.Put("/{employeeID}", h.Employee.Update)
					r.Post("/{employeeID}/deactivate", h.Employee.Deactivate)
					r.Delete("/{employeeID}", h.Employee.Delete)
				})

				r.Route("/{employeeID}/loan", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermViewLoans)).Get("/", h.Loan.GetByEmployee)
					r.With(middleware.RequirePermission(user.PermManageLoans)).Post("/movements", h.Loan.RegisterMovement)
				})

				r.Route("/{employeeID}/attendance", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermRecordAttendance))
					r.Get("/status", h.Attendance.GetStatus)
				})
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermManageContracts))
				r.Get("/", h.Contract.List)
				r.Get("/expiring", h.Contract.ListExpiring)
				r.Post("/", h.Contract.Create)
				r.Get("/{contractID}", h.Contract.GetByID)
				r.Put("/{contractID}", h.Contract.Update)
				r.Delete("/{contractID}", h.Contract.Delete)
			})

			r.Route("/sanctions", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermManageSanctions))
				r.Get("/", h.Sanction.List)
				r.Post("/", h.Sanction.Create)
				r.Get("/{sanctionID}", h.Sanction.GetByID)
				r.Put("/{sanctionID}", h.Sanction.Update)
				r.Delete("/{sanctionID}", h.Sanction.Delete)
			})

			r.Route("/incidents", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermViewIncidents)).Get("/", h.Incident.List)
				r.With(middleware.RequirePermission(user.PermViewIncidents)).Get("/{incidentID}", h.Incident.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageIncidents))
					r.Post("/", h.Incident.Create)
					r.Put("/{incidentID}", h.Incident.Update)
					r.Delete("/{incidentID}", h.Incident.Delete)
				})
			})

			r.With(middleware.RequirePermission(user.PermViewLoans)).Get("/loans", h.Loan.List)

			r.Route("/inventory", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermManageInventory))
				r.Get("/", h.Inventory.List)
				r.Post("/", h.Inventory.Create)
				r.Get("/{itemID}", h.Inventory.GetByID)
				r.Put("/{itemID}", h.Inventory.Update)
				r.Delete("/{itemID}", h.Inventory.Delete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermManageProducts))
				r.Get("/", h.Product.List)
				r.Post("/", h.Product.Create)
				r.Get("/{productID}", h.Product.GetByID)
				r.Put("/{productID}", h.Product.Update)
				r.Delete("/{productID}", h.Product.Delete)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermViewShifts)).Get("/", h.Shift.List)
				r.With(middleware.RequirePermission(user.PermManageShifts)).Post("/", h.Shift.Create)
				r.With(middleware.RequirePermission(user.PermViewShifts)).Get("/{shiftID}", h.Shift.GetByID)
				r.With(middleware.RequirePermission(user.PermApproveShifts)).Post("/{shiftID}/resolve", h.Shift.Resolve)
				r.With(middleware.RequirePermission(user.PermManageShifts)).Delete("/{shiftID}", h.Shift.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermRecordAttendance)).Post("/check-in", h.Attendance.CheckIn)
				r.With(middleware.RequirePermission(user.PermRecordAttendance)).Post("/check-out", h.Attendance.CheckOut)
				r.With(middleware.RequirePermission(user.PermViewEmployees)).Get("/", h.Attendance.List)
				r.With(middleware.RequirePermission(user.PermImportAttendance)).Post("/import", h.Attendance.Import)
				r.With(middleware.RequirePermission(user.PermManageEmployees)).Delete("/{recordID}", h.Attendance.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/incidents", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageIncidents))
					r.Get("/", h.Payroll.ListIncidents)
					r.Post("/", h.Payroll.CreateIncident)
					r.Get("/{incidentID}", h.Payroll.GetIncident)
					r.Put("/{incidentID}", h.Payroll.UpdateIncident)
					r.Delete("/{incidentID}", h.Payroll.DeleteIncident)
				})

				r.With(middleware.RequirePermission(user.PermViewPayroll)).Get("/", h.Payroll.List)
				r.With(middleware.RequirePermission(user.PermViewPayroll)).Get("/{runID}", h.Payroll.GetByID)
				r.With(middleware.RequirePermission(user.PermGeneratePayroll)).Post("/", h.Payroll.Generate)
				r.With(middleware.RequirePermission(user.PermGeneratePayroll)).Delete("/{runID}", h.Payroll.Delete)
			})

			r.Route("/master", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermViewEmployees)).Get("/", h.Master.GetMasterData)

				r.Route("/positions", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageMasterData))
					r.Get("/", h.Master.ListPositions)
					r.Post("/", h.Master.CreatePosition)
					r.Put("/{positionID}", h.Master.UpdatePosition)
					r.Delete("/{positionID}", h.Master.DeletePosition)
				})

				r.Route("/accounts", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermViewFinance)).Get("/", h.Master.ListAccounts)
					r.With(middleware.RequirePermission(user.PermViewFinance)).Get("/summary", h.Master.GetAccountSummary)
					r.With(middleware.RequirePermission(user.PermViewFinance)).Get("/{accountID}", h.Master.GetAccount)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermManageMasterData))
						r.Post("/", h.Master.CreateAccount)
						r.Post("/{accountID}/movements", h.Master.RegisterAccountMovement)
						r.Delete("/{accountID}", h.Master.DeleteAccount)
					})
				})
			})

			r.With(middleware.RequirePermission(user.PermViewReports)).Get("/reports/summary", h.Report.GetSummary)
		})
	})
	return r
}
