package dto

// CreateDepartmentRequest entrada para crear un departamento.
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"max=200"`
}

// DepartmentResponse departamento con número de empleados.
type DepartmentResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	EmployeeCount int    `json:"employee_count"`
}

// DepartmentListResponse listado admin.
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// CreateDepartmentResponse salida del alta.
type CreateDepartmentResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
}
