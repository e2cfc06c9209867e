package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de persistencia para departamentos.
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste un departamento; el nombre ya viene normalizado.
func (r *DepartmentRepo) Create(ctx context.Context, d *entity.Department) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO departments (name, created_at) VALUES ($1, $2) RETURNING id`,
		d.Name, d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*entity.Department, error) {
	return r.findOne(ctx, `SELECT id, name, created_at FROM departments WHERE id = $1`, id)
}

func (r *DepartmentRepo) GetByName(ctx context.Context, name string) (*entity.Department, error) {
	return r.findOne(ctx, `SELECT id, name, created_at FROM departments WHERE name = $1`, name)
}

// ListWithCounts departamentos con el número de usuarios asignados.
func (r *DepartmentRepo) ListWithCounts(ctx context.Context) ([]*entity.DepartmentWithCount, error) {
	query := `
		SELECT d.id, d.name, d.created_at, COUNT(u.id)
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id
		GROUP BY d.id, d.name, d.created_at
		ORDER BY d.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.DepartmentWithCount
	for rows.Next() {
		var d entity.DepartmentWithCount
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.EmployeeCount); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DepartmentRepo) findOne(ctx context.Context, query string, arg any) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(ctx, query, arg).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}
