package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest alta de usuario + perfil (password en texto, se hashea en el use case).
// Los punteros distinguen "ausente" de "vacío": un campo requerido ausente es un 400.
type CreateEmployeeRequest struct {
	EmpID        *string          `json:"emp_id" validate:"required,max=50"`
	Email        *string          `json:"email" validate:"required,email"`
	Password     *string          `json:"password" validate:"required,min=8"`
	Role         *string          `json:"role" validate:"required,oneof=admin manager employee"`
	DepartmentID *int64           `json:"department_id" validate:"required,gt=0"`
	FullName     *string          `json:"full_name" validate:"required,max=200"`
	Salary       *decimal.Decimal `json:"salary"`
	ContactEmail *string          `json:"contact_email" validate:"omitempty,email"`
	Phone        *string          `json:"phone" validate:"omitempty,max=50"`
}

// UpdateEmployeeRequest actualización parcial: solo se tocan los campos presentes.
type UpdateEmployeeRequest struct {
	Email        *string          `json:"email" validate:"omitempty,email"`
	Role         *string          `json:"role" validate:"omitempty,oneof=admin manager employee"`
	DepartmentID *int64           `json:"department_id" validate:"omitempty,gt=0"`
	Password     *string          `json:"password" validate:"omitempty,min=8"`
	FullName     *string          `json:"full_name" validate:"omitempty,max=200"`
	Salary       *decimal.Decimal `json:"salary"`
	ContactEmail *string          `json:"contact_email" validate:"omitempty,email"`
	Phone        *string          `json:"phone" validate:"omitempty,max=50"`
}

// ProfileDTO perfil completo (vista admin, incluye salario).
type ProfileDTO struct {
	FullName     string          `json:"full_name"`
	Salary       decimal.Decimal `json:"salary"`
	ContactEmail string          `json:"contact_email"`
	Phone        string          `json:"phone"`
}

// EmployeeResponse empleado en el listado admin.
type EmployeeResponse struct {
	ID           int64       `json:"id"`
	EmpID        string      `json:"emp_id"`
	Email        string      `json:"email"`
	Role         string      `json:"role"`
	DepartmentID *int64      `json:"department_id"`
	LeaveBalance int         `json:"leave_balance"`
	Profile      *ProfileDTO `json:"profile"`
}

// EmployeeListResponse listado admin de empleados.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// CreateEmployeeResponse salida del alta.
type CreateEmployeeResponse struct {
	Message string `json:"message"`
	EmpID   string `json:"emp_id"`
}
