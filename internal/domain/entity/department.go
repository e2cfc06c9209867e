package entity

import "time"

// Department agrupa usuarios. El nombre es único.
type Department struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// DepartmentWithCount departamento con el número de usuarios asignados (listado admin).
type DepartmentWithCount struct {
	Department
	EmployeeCount int
}
