package entity

import "time"

// User representa una cuenta del sistema (empleado, manager o admin).
type User struct {
	ID           int64
	EmpID        string // código de empleado, único
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	DepartmentID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
