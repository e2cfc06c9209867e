package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `id, user_id, date, status, check_in_time, check_out_time, created_at`

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador.
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create inserta la marca del día. El índice único (user_id, date) resuelve marcas concurrentes:
// si no se insertó ninguna fila devuelve domain.ErrConflict.
func (r *AttendanceRepo) Create(ctx context.Context, a *entity.Attendance) error {
	query := `
		INSERT INTO attendance (user_id, date, status, check_in_time, check_out_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.UserID, a.Date, a.Status, clockToPG(a.CheckInTime), clockToPG(a.CheckOutTime), a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepo) GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*entity.Attendance, error) {
	a, err := scanAttendance(r.q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = $1 AND date = $2`, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return a, nil
}

// ListByUser historial por fecha.
func (r *AttendanceRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.Attendance, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = $1 ORDER BY date`, userID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAttendance(row pgx.Row) (*entity.Attendance, error) {
	var a entity.Attendance
	var in, out pgtype.Time
	if err := row.Scan(&a.ID, &a.UserID, &a.Date, &a.Status, &in, &out, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.CheckInTime = clockFromPG(in)
	a.CheckOutTime = clockFromPG(out)
	return &a, nil
}
