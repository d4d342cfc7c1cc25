package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/config"
	appHTTP "github.com/grupo-genisa/erp-backend-go/internal/handler/http"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/cron"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/jwt"
	"github.com/grupo-genisa/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/grupo-genisa/erp-backend-go/internal/service/attendance"
	authService "github.com/grupo-genisa/erp-backend-go/internal/service/auth"
	contractService "github.com/grupo-genisa/erp-backend-go/internal/service/contract"
	employeeService "github.com/grupo-genisa/erp-backend-go/internal/service/employee"
	incidentService "github.com/grupo-genisa/erp-backend-go/internal/service/incident"
	inventoryService "github.com/grupo-genisa/erp-backend-go/internal/service/inventory"
	loanService "github.com/grupo-genisa/erp-backend-go/internal/service/loan"
	masterService "github.com/grupo-genisa/erp-backend-go/internal/service/master"
	payrollService "github.com/grupo-genisa/erp-backend-go/internal/service/payroll"
	productService "github.com/grupo-genisa/erp-backend-go/internal/service/product"
	reportService "github.com/grupo-genisa/erp-backend-go/internal/service/report"
	sanctionService "github.com/grupo-genisa/erp-backend-go/internal/service/sanction"
	shiftService "github.com/grupo-genisa/erp-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	sanctionRepo := postgresql.NewSanctionRepository(db)
	incidentRepo := postgresql.NewIncidentRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	inventoryRepo := postgresql.NewInventoryRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	payrollIncidentRepo := postgresql.NewPayrollIncidentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	contractSvc := contractService.NewContractService(contractRepo, employeeRepo)
	sanctionSvc := sanctionService.NewSanctionService(sanctionRepo, employeeRepo)
	incidentSvc := incidentService.NewIncidentService(incidentRepo, employeeRepo)
	loanSvc := loanService.NewLoanService(db, loanRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, contractSvc, loanSvc, sanctionSvc, incidentSvc)
	inventorySvc := inventoryService.NewInventoryService(inventoryRepo, productRepo)
	productSvc := productService.NewProductService(productRepo, inventoryRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, payrollIncidentRepo, employeeRepo, loanRepo, loanSvc)
	masterSvc := masterService.NewMasterService(positionRepo, accountRepo)
	reportSvc := reportService.NewReportService(employeeRepo, contractRepo, shiftRepo, loanRepo, inventoryRepo, productRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("contract-expiry-scan", 24*time.Hour, cron.ContractExpiryJob(contractRepo))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Contract:   appHTTP.NewContractHandler(contractSvc),
		Sanction:   appHTTP.NewSanctionHandler(sanctionSvc),
		Incident:   appHTTP.NewIncidentHandler(incidentSvc),
		Loan:       appHTTP.NewLoanHandler(loanSvc),
		Inventory:  appHTTP.NewInventoryHandler(inventorySvc),
		Product:    appHTTP.NewProductHandler(productSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
