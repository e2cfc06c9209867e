package dto

// SubmitLeaveRequest entrada del empleado. Fechas en YYYY-MM-DD.
type SubmitLeaveRequest struct {
	StartDate *string `json:"start_date" validate:"required"`
	EndDate   *string `json:"end_date" validate:"required"`
	Reason    *string `json:"reason" validate:"required"`
}

// SubmitLeaveResponse salida del alta.
type SubmitLeaveResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Status  string `json:"status"`
}

// LeaveRequestDTO solicitud propia del empleado.
type LeaveRequestDTO struct {
	ID        int64  `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

// LeaveRequestListResponse listado propio.
type LeaveRequestListResponse struct {
	LeaveRequests []LeaveRequestDTO `json:"leave_requests"`
}

// AdminLeaveRequestDTO solicitud en el listado admin, con nombre y saldo del empleado.
type AdminLeaveRequestDTO struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	LeaveBalance int    `json:"leave_balance"`
}

// AdminLeaveRequestListResponse listado admin.
type AdminLeaveRequestListResponse struct {
	LeaveRequests []AdminLeaveRequestDTO `json:"leave_requests"`
}

// UpdateLeaveStatusRequest override del admin. Status es puntero: ausente es
// "Status is required", presente pero vacío es un valor inválido.
type UpdateLeaveStatusRequest struct {
	Status *string `json:"status"`
}

// LeaveStatusResponse salida de una transición.
type LeaveStatusResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Status  string `json:"status"`
}
