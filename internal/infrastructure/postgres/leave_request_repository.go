package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

var _ repository.LeaveRequestRepository = (*LeaveRequestRepo)(nil)

const leaveColumns = `id, employee_id, start_date, end_date, reason, status, created_at, updated_at`

// LeaveRequestRepo implementación del puerto LeaveRequestRepository sobre PostgreSQL.
type LeaveRequestRepo struct {
	q Querier
}

// NewLeaveRequestRepository construye el adaptador.
func NewLeaveRequestRepository(q Querier) *LeaveRequestRepo {
	return &LeaveRequestRepo{q: q}
}

// Create persiste una solicitud y rellena req.ID.
func (r *LeaveRequestRepo) Create(ctx context.Context, req *entity.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (employee_id, start_date, end_date, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		req.EmployeeID, req.StartDate, req.EndDate, req.Reason, string(req.Status), req.CreatedAt, req.UpdatedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert leave request: %w", err)
	}
	return nil
}

func (r *LeaveRequestRepo) GetByID(ctx context.Context, id int64) (*entity.LeaveRequest, error) {
	req, err := scanLeave(r.q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave request: %w", err)
	}
	return req, nil
}

// ListByEmployee solicitudes de un usuario por fecha de inicio.
func (r *LeaveRequestRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]*entity.LeaveRequest, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE employee_id = $1 ORDER BY start_date, id`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// ListAll todas las solicitudes con el nombre del perfil ("" si el usuario no tiene perfil).
func (r *LeaveRequestRepo) ListAll(ctx context.Context) ([]*entity.LeaveRequestWithEmployee, error) {
	query := `
		SELECT l.id, l.employee_id, l.start_date, l.end_date, l.reason, l.status, l.created_at, l.updated_at,
		       COALESCE(p.full_name, '')
		FROM leave_requests l
		LEFT JOIN employee_profiles p ON p.user_id = l.employee_id
		ORDER BY l.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all leave requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.LeaveRequestWithEmployee
	for rows.Next() {
		var w entity.LeaveRequestWithEmployee
		var status string
		if err := rows.Scan(&w.ID, &w.EmployeeID, &w.StartDate, &w.EndDate, &w.Reason, &status,
			&w.CreatedAt, &w.UpdatedAt, &w.EmployeeName); err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		w.Status = entity.LeaveStatus(status)
		list = append(list, &w)
	}
	return list, rows.Err()
}

// UpdateStatus una sola sentencia; ErrNotFound si el id no existe.
func (r *LeaveRequestRepo) UpdateStatus(ctx context.Context, id int64, status entity.LeaveStatus) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE leave_requests SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLeave(row pgx.Row) (*entity.LeaveRequest, error) {
	var req entity.LeaveRequest
	var status string
	if err := row.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason, &status,
		&req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, err
	}
	req.Status = entity.LeaveStatus(status)
	return &req, nil
}
