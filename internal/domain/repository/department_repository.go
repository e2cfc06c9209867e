package repository

import (
	"context"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para Department (DIP).
type DepartmentRepository interface {
	// Create devuelve domain.ErrConflict si el nombre ya existe.
	Create(ctx context.Context, dept *entity.Department) error
	GetByID(ctx context.Context, id int64) (*entity.Department, error)
	GetByName(ctx context.Context, name string) (*entity.Department, error)
	ListWithCounts(ctx context.Context) ([]*entity.DepartmentWithCount, error)
}
