package repository

import (
	"context"
	"time"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// AttendanceRepository define el puerto de persistencia para Attendance (DIP).
// Los registros son inmutables una vez creados.
type AttendanceRepository interface {
	// Create devuelve domain.ErrConflict si ya existe un registro para (user_id, date).
	Create(ctx context.Context, a *entity.Attendance) error
	GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*entity.Attendance, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Attendance, error)
}
