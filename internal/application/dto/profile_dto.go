package dto

// ContactDTO datos de contacto visibles para el propio empleado (sin salario).
type ContactDTO struct {
	FullName     string `json:"full_name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

// SelfProfile vista del propio empleado.
type SelfProfile struct {
	ID           int64      `json:"id"`
	EmpID        string     `json:"emp_id"`
	Email        string     `json:"email"`
	Department   *string    `json:"department"`
	LeaveBalance int        `json:"leave_balance"`
	Profile      ContactDTO `json:"profile"`
}

// ProfileResponse envoltorio {"employee": ...}.
type ProfileResponse struct {
	Employee SelfProfile `json:"employee"`
}

// UpdateContactRequest edición de contacto; solo se tocan los campos presentes.
type UpdateContactRequest struct {
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
}
