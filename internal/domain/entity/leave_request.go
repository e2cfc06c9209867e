package entity

import "time"

// LeaveStatus estado del flujo de aprobación.
type LeaveStatus string

const (
	LeavePendingManager LeaveStatus = "pending_manager"
	LeavePendingAdmin   LeaveStatus = "pending_admin"
	LeaveApproved       LeaveStatus = "approved"
	LeaveRejected       LeaveStatus = "rejected"
	// LeavePendingLegacy lo escribía una versión anterior del alta de solicitudes.
	// Se lee de la base pero nunca se escribe.
	LeavePendingLegacy LeaveStatus = "pending"
)

// LeaveRequest solicitud de ausencia de un empleado.
type LeaveRequest struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time // fecha (00:00 UTC)
	EndDate    time.Time // fecha (00:00 UTC), inclusiva
	Reason     string
	Status     LeaveStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LeaveRequestWithEmployee solicitud con datos del empleado para el listado admin.
type LeaveRequestWithEmployee struct {
	LeaveRequest
	EmployeeName string // "" si el usuario no tiene perfil
}
