package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

const (
	MsgProfileNotFound = "Profile not found"
	MsgContactUpdated  = "Contact information updated successfully"
)

// ProfileUseCase vista y edición de contacto del propio empleado.
type ProfileUseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	depts    repository.DepartmentRepository
	balances *BalanceUseCase
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(users repository.UserRepository, profiles repository.ProfileRepository, depts repository.DepartmentRepository, balances *BalanceUseCase) *ProfileUseCase {
	return &ProfileUseCase{users: users, profiles: profiles, depts: depts, balances: balances}
}

// Get perfil propio: datos de usuario, departamento, saldo y contacto. No expone salario.
func (uc *ProfileUseCase) Get(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound(MsgProfileNotFound)
	}
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar perfil: %w", err)
	}
	if profile == nil {
		return nil, domain.NotFound(MsgProfileNotFound)
	}
	var deptName *string
	if user.DepartmentID != nil {
		dept, err := uc.depts.GetByID(ctx, *user.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("buscar departamento: %w", err)
		}
		if dept != nil {
			deptName = &dept.Name
		}
	}
	bal, err := uc.balances.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{Employee: dto.SelfProfile{
		ID:           user.ID,
		EmpID:        user.EmpID,
		Email:        user.Email,
		Department:   deptName,
		LeaveBalance: bal,
		Profile: dto.ContactDTO{
			FullName:     profile.FullName,
			ContactEmail: profile.ContactEmail,
			Phone:        profile.Phone,
		},
	}}, nil
}

// UpdateContact cambia contact_email y/o phone del perfil propio.
func (uc *ProfileUseCase) UpdateContact(ctx context.Context, userID int64, in dto.UpdateContactRequest) (*dto.MessageResponse, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar perfil: %w", err)
	}
	if profile == nil {
		return nil, domain.NotFound(MsgProfileNotFound)
	}
	if in.ContactEmail != nil {
		profile.ContactEmail = *in.ContactEmail
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("actualizar perfil: %w", err)
	}
	return &dto.MessageResponse{Message: MsgContactUpdated}, nil
}
