package repository

import (
	"context"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User y su perfil (DIP).
// Los métodos Get*/Find* devuelven (nil, nil) si no existe la fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmpID(ctx context.Context, empID string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsByEmpIDOrEmail verifica duplicados antes del alta.
	ExistsByEmpIDOrEmail(ctx context.Context, empID, email string) (bool, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
}

// ProfileRepository puerto de persistencia para EmployeeProfile (1:1 con User).
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.EmployeeProfile) error
	GetByUserID(ctx context.Context, userID int64) (*entity.EmployeeProfile, error)
	List(ctx context.Context) ([]*entity.EmployeeProfile, error)
	Update(ctx context.Context, profile *entity.EmployeeProfile) error
}
