package dto

// MarkAttendanceRequest marca del día. Todos los campos son opcionales.
type MarkAttendanceRequest struct {
	Status       string  `json:"status" validate:"omitempty,max=30"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
}

// MarkAttendanceResponse salida de la marca.
type MarkAttendanceResponse struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// AttendanceDTO un registro; las horas son null si no se enviaron.
type AttendanceDTO struct {
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
}

// EmployeeAttendanceResponse historial de un empleado.
type EmployeeAttendanceResponse struct {
	EmpID      string          `json:"emp_id"`
	Attendance []AttendanceDTO `json:"attendance"`
}

// AllAttendanceResponse historial de todos los empleados (admin).
type AllAttendanceResponse struct {
	AllAttendance []EmployeeAttendanceResponse `json:"all_attendance"`
}
