package entity

import "github.com/shopspring/decimal"

// EmployeeProfile datos de contacto y nómina de un usuario (1:1 con User).
type EmployeeProfile struct {
	UserID       int64
	FullName     string
	Salary       decimal.Decimal
	ContactEmail string
	Phone        string
}
