package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rrhh-api/internal/application/auth"
	"github.com/jhoicas/rrhh-api/internal/application/export"
	"github.com/jhoicas/rrhh-api/internal/application/usecase"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	DepartmentUC *usecase.DepartmentUseCase
	LeaveUC      *usecase.LeaveUseCase
	AttendanceUC *usecase.AttendanceUseCase
	BalanceUC    *usecase.BalanceUseCase
	ProfileUC    *usecase.ProfileUseCase
	ExportUC     *export.UseCase
	Authorizer   capabilityChecker
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Todo lo demás requiere Bearer Token
	protected := api.Group("", AuthMiddleware(deps.AuthUC))
	can := func(c entity.Capability) fiber.Handler { return RequireCapability(deps.Authorizer, c) }

	protected.Post("/logout", authHandler.Logout)

	// Self-service
	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Get("/profile", profileHandler.Get)
	protected.Patch("/profile/contact", profileHandler.UpdateContact)

	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	protected.Get("/leave", leaveHandler.ListOwn)
	protected.Post("/leave", leaveHandler.Submit)

	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	protected.Get("/attendance", attendanceHandler.ListOwn)
	protected.Post("/attendance", attendanceHandler.Mark)

	balanceHandler := NewBalanceHandler(deps.BalanceUC)
	protected.Get("/leave-balance", balanceHandler.Self)

	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export-self", exportHandler.Self(export.FormatCSV))
	protected.Get("/export-self-pdf", exportHandler.Self(export.FormatPDF))
	protected.Get("/export-self-xlsx", exportHandler.Self(export.FormatXLSX))

	// Manager
	protected.Put("/manager/leave-requests/:id", can(entity.CapLeaveForward), leaveHandler.ManagerForward)

	// Admin
	admin := protected.Group("/admin")

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	admin.Get("/employees", can(entity.CapEmployeesManage), employeeHandler.List)
	admin.Post("/employees", can(entity.CapEmployeesManage), employeeHandler.Create)
	admin.Put("/employees/:emp_id", can(entity.CapEmployeesManage), employeeHandler.Update)

	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	admin.Get("/departments", can(entity.CapDepartmentsManage), departmentHandler.List)
	admin.Post("/departments", can(entity.CapDepartmentsManage), departmentHandler.Create)

	admin.Get("/leave-requests", can(entity.CapLeaveReview), leaveHandler.ListAll)
	admin.Put("/leave-requests/:id", can(entity.CapLeaveReview), leaveHandler.AdminSetStatus)

	admin.Get("/attendance", can(entity.CapAttendanceViewAll), attendanceHandler.ListAll)
	admin.Get("/attendance/:emp_id", can(entity.CapAttendanceViewAll), attendanceHandler.ListByEmpID)

	admin.Get("/leave-balances", can(entity.CapBalanceViewAll), balanceHandler.All)
	admin.Get("/leave-balance/:emp_id", can(entity.CapBalanceViewAll), balanceHandler.ByEmpID)

	admin.Get("/export-employee", can(entity.CapExportAny), exportHandler.Employee(export.FormatCSV))
	admin.Get("/export-employee-pdf", can(entity.CapExportAny), exportHandler.Employee(export.FormatPDF))
	admin.Get("/export-employee-xlsx", can(entity.CapExportAny), exportHandler.Employee(export.FormatXLSX))
}
