package repository

import (
	"context"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// LeaveRequestRepository define el puerto de persistencia para LeaveRequest (DIP).
// No hay borrado: las solicitudes solo cambian de estado.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req *entity.LeaveRequest) error
	GetByID(ctx context.Context, id int64) (*entity.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*entity.LeaveRequest, error)
	ListAll(ctx context.Context) ([]*entity.LeaveRequestWithEmployee, error)
	// UpdateStatus es una única sentencia UPDATE; devuelve domain.ErrNotFound si el id no existe.
	UpdateStatus(ctx context.Context, id int64, status entity.LeaveStatus) error
}
