package dto

// LeaveBalanceResponse saldo de un empleado para el año en curso.
type LeaveBalanceResponse struct {
	EmpID        string `json:"emp_id"`
	Year         int    `json:"year"`
	LeaveBalance int    `json:"leave_balance"`
}

// LeaveBalanceListResponse saldos de todos los empleados (admin).
type LeaveBalanceListResponse struct {
	LeaveBalances []LeaveBalanceResponse `json:"leave_balances"`
}
