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

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo perfiles de empleado (1:1 con users, PK user_id).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

func (r *ProfileRepo) Create(ctx context.Context, p *entity.EmployeeProfile) error {
	query := `
		INSERT INTO employee_profiles (user_id, full_name, salary, contact_email, phone)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, p.UserID, p.FullName, p.Salary, p.ContactEmail, p.Phone); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID int64) (*entity.EmployeeProfile, error) {
	query := `SELECT user_id, full_name, salary, contact_email, phone FROM employee_profiles WHERE user_id = $1`
	var p entity.EmployeeProfile
	err := r.q.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.FullName, &p.Salary, &p.ContactEmail, &p.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]*entity.EmployeeProfile, error) {
	rows, err := r.q.Query(ctx, `SELECT user_id, full_name, salary, contact_email, phone FROM employee_profiles ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmployeeProfile
	for rows.Next() {
		var p entity.EmployeeProfile
		if err := rows.Scan(&p.UserID, &p.FullName, &p.Salary, &p.ContactEmail, &p.Phone); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProfileRepo) Update(ctx context.Context, p *entity.EmployeeProfile) error {
	query := `
		UPDATE employee_profiles SET full_name = $2, salary = $3, contact_email = $4, phone = $5
		WHERE user_id = $1`
	tag, err := r.q.Exec(ctx, query, p.UserID, p.FullName, p.Salary, p.ContactEmail, p.Phone)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
