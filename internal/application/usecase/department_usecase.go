package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
	"golang.org/x/text/unicode/norm"
)

const (
	MsgDepartmentNameRequired = "Department name is required"
	MsgDepartmentExists       = "Department with this name already exists"
	MsgDepartmentCreated      = "Department added successfully"
)

// DepartmentUseCase listado y alta de departamentos.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
	now  Clock
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository, now Clock) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo, now: orSystem(now)}
}

// NormalizeName recorta espacios y lleva el nombre a NFC, así "Diseño" compuesto y
// descompuesto chocan en el índice único.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// List departamentos con su número de empleados.
func (uc *DepartmentUseCase) List(ctx context.Context) (*dto.DepartmentListResponse, error) {
	rows, err := uc.repo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar departamentos: %w", err)
	}
	out := &dto.DepartmentListResponse{Departments: make([]dto.DepartmentResponse, 0, len(rows))}
	for _, d := range rows {
		out.Departments = append(out.Departments, dto.DepartmentResponse{
			ID:            d.ID,
			Name:          d.Name,
			EmployeeCount: d.EmployeeCount,
		})
	}
	return out, nil
}

// Create crea un departamento con nombre único.
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.CreateDepartmentRequest) (*dto.CreateDepartmentResponse, error) {
	name := NormalizeName(in.Name)
	if name == "" {
		return nil, domain.Invalid(MsgDepartmentNameRequired)
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("buscar departamento: %w", err)
	}
	if existing != nil {
		return nil, domain.Conflict(MsgDepartmentExists)
	}
	dept := &entity.Department{Name: name, CreatedAt: uc.now()}
	if err := uc.repo.Create(ctx, dept); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict(MsgDepartmentExists)
		}
		return nil, fmt.Errorf("crear departamento: %w", err)
	}
	return &dto.CreateDepartmentResponse{Message: MsgDepartmentCreated, ID: dept.ID, Name: dept.Name}, nil
}
