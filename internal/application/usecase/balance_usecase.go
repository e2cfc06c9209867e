package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/leave"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

// MsgEmployeeNotFound se comparte entre los casos de uso que resuelven un emp_id.
const MsgEmployeeNotFound = "Employee not found"

// BalanceUseCase calcula saldos de vacaciones del año en curso.
type BalanceUseCase struct {
	users       repository.UserRepository
	leaves      repository.LeaveRequestRepository
	entitlement int
	now         Clock
}

// NewBalanceUseCase construye el caso de uso. entitlement <= 0 usa el cupo por defecto.
func NewBalanceUseCase(users repository.UserRepository, leaves repository.LeaveRequestRepository, entitlement int, now Clock) *BalanceUseCase {
	if entitlement <= 0 {
		entitlement = leave.DefaultAnnualEntitlement
	}
	return &BalanceUseCase{users: users, leaves: leaves, entitlement: entitlement, now: orSystem(now)}
}

// Year año en curso según el reloj del servidor.
func (uc *BalanceUseCase) Year() int { return uc.now().Year() }

// ForUser saldo de un usuario.
func (uc *BalanceUseCase) ForUser(ctx context.Context, userID int64) (int, error) {
	reqs, err := uc.leaves.ListByEmployee(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("listar solicitudes: %w", err)
	}
	return leave.Balance(uc.entitlement, uc.Year(), reqs), nil
}

// Lookup carga todas las solicitudes una vez y devuelve el saldo por user_id.
// Un usuario sin solicitudes tiene el cupo completo.
func (uc *BalanceUseCase) Lookup(ctx context.Context) (func(userID int64) int, error) {
	all, err := uc.leaves.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar solicitudes: %w", err)
	}
	byUser := make(map[int64][]*entity.LeaveRequest)
	for _, r := range all {
		req := r.LeaveRequest
		byUser[r.EmployeeID] = append(byUser[r.EmployeeID], &req)
	}
	year := uc.Year()
	return func(userID int64) int {
		return leave.Balance(uc.entitlement, year, byUser[userID])
	}, nil
}

// Self saldo del usuario autenticado.
func (uc *BalanceUseCase) Self(ctx context.Context, userID int64) (*dto.LeaveBalanceResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound(MsgEmployeeNotFound)
	}
	return uc.forUser(ctx, user)
}

// ByEmpID saldo de un empleado por código (admin).
func (uc *BalanceUseCase) ByEmpID(ctx context.Context, empID string) (*dto.LeaveBalanceResponse, error) {
	user, err := uc.users.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound(MsgEmployeeNotFound)
	}
	return uc.forUser(ctx, user)
}

// All saldos de todos los usuarios (admin).
func (uc *BalanceUseCase) All(ctx context.Context) (*dto.LeaveBalanceListResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	balanceOf, err := uc.Lookup(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.LeaveBalanceListResponse{LeaveBalances: make([]dto.LeaveBalanceResponse, 0, len(users))}
	year := uc.Year()
	for _, u := range users {
		out.LeaveBalances = append(out.LeaveBalances, dto.LeaveBalanceResponse{
			EmpID:        u.EmpID,
			Year:         year,
			LeaveBalance: balanceOf(u.ID),
		})
	}
	return out, nil
}

func (uc *BalanceUseCase) forUser(ctx context.Context, user *entity.User) (*dto.LeaveBalanceResponse, error) {
	bal, err := uc.ForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LeaveBalanceResponse{EmpID: user.EmpID, Year: uc.Year(), LeaveBalance: bal}, nil
}
