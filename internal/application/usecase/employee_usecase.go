package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/rrhh-api/internal/application/auth"
	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Mensajes del ciclo de vida de empleados.
const (
	MsgEmployeeExists     = "Employee with this ID or email already exists"
	MsgDepartmentNotFound = "Department not found"
	MsgInvalidRole        = "Invalid role"
	MsgEmployeeCreated    = "Employee added successfully"
	MsgEmployeeUpdated    = "Employee updated successfully"
)

// EmployeeUseCase alta, edición y listado de empleados (admin).
type EmployeeUseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	depts    repository.DepartmentRepository
	tx       repository.TxRunner
	balances *BalanceUseCase
	now      Clock
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	depts repository.DepartmentRepository,
	tx repository.TxRunner,
	balances *BalanceUseCase,
	now Clock,
) *EmployeeUseCase {
	return &EmployeeUseCase{users: users, profiles: profiles, depts: depts, tx: tx, balances: balances, now: orSystem(now)}
}

// List devuelve todos los usuarios con su perfil (o null) y saldo del año.
func (uc *EmployeeUseCase) List(ctx context.Context) (*dto.EmployeeListResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	profiles, err := uc.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar perfiles: %w", err)
	}
	byUser := make(map[int64]*entity.EmployeeProfile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p
	}
	balanceOf, err := uc.balances.Lookup(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.EmployeeListResponse{Employees: make([]dto.EmployeeResponse, 0, len(users))}
	for _, u := range users {
		item := dto.EmployeeResponse{
			ID:           u.ID,
			EmpID:        u.EmpID,
			Email:        u.Email,
			Role:         string(u.Role),
			DepartmentID: u.DepartmentID,
			LeaveBalance: balanceOf(u.ID),
		}
		if p := byUser[u.ID]; p != nil {
			item.Profile = &dto.ProfileDTO{
				FullName:     p.FullName,
				Salary:       p.Salary,
				ContactEmail: p.ContactEmail,
				Phone:        p.Phone,
			}
		}
		out.Employees = append(out.Employees, item)
	}
	return out, nil
}

// Create crea usuario + perfil en una sola transacción.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.CreateEmployeeResponse, error) {
	role, ok := entity.ParseRole(deref(in.Role))
	if !ok {
		return nil, domain.Invalid(MsgInvalidRole)
	}
	empID := strings.TrimSpace(deref(in.EmpID))
	email := strings.TrimSpace(deref(in.Email))
	if err := uc.requireDepartment(ctx, *in.DepartmentID); err != nil {
		return nil, err
	}
	exists, err := uc.users.ExistsByEmpIDOrEmail(ctx, empID, email)
	if err != nil {
		return nil, fmt.Errorf("verificar duplicados: %w", err)
	}
	if exists {
		return nil, domain.Conflict(MsgEmployeeExists)
	}
	hash, err := auth.HashPassword(deref(in.Password))
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	now := uc.now()
	deptID := *in.DepartmentID
	user := &entity.User{
		EmpID:        empID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		DepartmentID: &deptID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.EmployeeProfile{
		FullName:     strings.TrimSpace(deref(in.FullName)),
		Salary:       decimal.Zero,
		ContactEmail: email,
		Phone:        deref(in.Phone),
	}
	if in.Salary != nil {
		profile.Salary = *in.Salary
	}
	if in.ContactEmail != nil && *in.ContactEmail != "" {
		profile.ContactEmail = *in.ContactEmail
	}

	err = uc.tx.RunEmployee(ctx, func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return profiles.Create(ctx, profile)
	})
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.Conflict(MsgEmployeeExists)
	}
	if err != nil {
		return nil, fmt.Errorf("crear empleado: %w", err)
	}
	return &dto.CreateEmployeeResponse{Message: MsgEmployeeCreated, EmpID: user.EmpID}, nil
}

// Update aplica una actualización parcial sobre usuario y perfil.
// Si el usuario no tenía perfil y llegan campos de perfil, se crea.
func (uc *EmployeeUseCase) Update(ctx context.Context, empID string, in dto.UpdateEmployeeRequest) (*dto.MessageResponse, error) {
	user, err := uc.users.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound(MsgEmployeeNotFound)
	}

	if in.Email != nil {
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.Role != nil {
		role, ok := entity.ParseRole(*in.Role)
		if !ok {
			return nil, domain.Invalid(MsgInvalidRole)
		}
		user.Role = role
	}
	if in.DepartmentID != nil {
		if err := uc.requireDepartment(ctx, *in.DepartmentID); err != nil {
			return nil, err
		}
		deptID := *in.DepartmentID
		user.DepartmentID = &deptID
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hashear password: %w", err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = uc.now()

	touchesProfile := in.FullName != nil || in.Salary != nil || in.ContactEmail != nil || in.Phone != nil
	err = uc.tx.RunEmployee(ctx, func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Update(ctx, user); err != nil {
			return err
		}
		if !touchesProfile {
			return nil
		}
		profile, err := profiles.GetByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		create := profile == nil
		if create {
			profile = &entity.EmployeeProfile{UserID: user.ID, Salary: decimal.Zero, ContactEmail: user.Email}
		}
		if in.FullName != nil {
			profile.FullName = strings.TrimSpace(*in.FullName)
		}
		if in.Salary != nil {
			profile.Salary = *in.Salary
		}
		if in.ContactEmail != nil {
			profile.ContactEmail = *in.ContactEmail
		}
		if in.Phone != nil {
			profile.Phone = *in.Phone
		}
		if create {
			return profiles.Create(ctx, profile)
		}
		return profiles.Update(ctx, profile)
	})
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.Conflict(MsgEmployeeExists)
	}
	if err != nil {
		return nil, fmt.Errorf("actualizar empleado: %w", err)
	}
	return &dto.MessageResponse{Message: MsgEmployeeUpdated}, nil
}

func (uc *EmployeeUseCase) requireDepartment(ctx context.Context, id int64) error {
	dept, err := uc.depts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar departamento: %w", err)
	}
	if dept == nil {
		return domain.NotFound(MsgDepartmentNotFound)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
