// Package export arma el agregado de datos de un empleado y lo entrega a un renderer
// (CSV, PDF o XLSX) para descargarlo como archivo.
package export

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/rrhh-api/internal/application/usecase"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

// Format formato de exportación.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// MsgPDFAllUsers el PDF solo se genera para un empleado.
const MsgPDFAllUsers = "PDF export for all users not implemented"

// Record agregado exportable de un empleado.
type Record struct {
	EmpID         string
	FullName      string
	Email         string
	Role          string
	Department    string
	LeaveBalance  int
	Attendance    []*entity.Attendance   // por fecha
	LeaveRequests []*entity.LeaveRequest // por fecha de inicio
}

// Renderer convierte registros en los bytes del archivo.
type Renderer interface {
	Render(records []*Record) ([]byte, error)
}

// BatchRenderer lo implementan los renderers que escriben distinto el volcado de todos
// los usuarios que un único empleado.
type BatchRenderer interface {
	RenderAll(records []*Record) ([]byte, error)
}

// File archivo listo para enviar.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Recorder cuenta exportaciones generadas.
type Recorder interface {
	Export(format string)
}

type nopRecorder struct{}

func (nopRecorder) Export(string) {}

var contentTypes = map[Format]string{
	FormatCSV:  "text/csv",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Repos puertos de lectura que necesita el agregado.
type Repos struct {
	Users       repository.UserRepository
	Profiles    repository.ProfileRepository
	Departments repository.DepartmentRepository
	Leaves      repository.LeaveRequestRepository
	Attendance  repository.AttendanceRepository
}

// UseCase exportaciones propias y de administración.
type UseCase struct {
	repos     Repos
	balances  *usecase.BalanceUseCase
	renderers map[Format]Renderer
	metrics   Recorder
}

// NewUseCase construye el caso de uso. metrics puede ser nil.
func NewUseCase(repos Repos, balances *usecase.BalanceUseCase, renderers map[Format]Renderer, metrics Recorder) *UseCase {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &UseCase{repos: repos, balances: balances, renderers: renderers, metrics: metrics}
}

// Self exporta los datos del usuario autenticado.
func (uc *UseCase) Self(ctx context.Context, userID int64, format Format) (*File, error) {
	user, err := uc.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound(usecase.MsgEmployeeNotFound)
	}
	rec, err := uc.Build(ctx, user)
	if err != nil {
		return nil, err
	}
	return uc.render(format, []*Record{rec})
}

// Employee exporta un empleado por emp_id. Sin emp_id exporta a todos los usuarios,
// salvo en PDF que solo admite uno.
func (uc *UseCase) Employee(ctx context.Context, empID string, format Format) (*File, error) {
	if empID == "" {
		if format == FormatPDF {
			return nil, domain.Invalid(MsgPDFAllUsers)
		}
		users, err := uc.repos.Users.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listar usuarios: %w", err)
		}
		recs := make([]*Record, 0, len(users))
		for _, u := range users {
			rec, err := uc.Build(ctx, u)
			if err != nil {
				return nil, err
			}
			recs = append(recs, rec)
		}
		return uc.renderAll(format, recs)
	}
	user, err := uc.repos.Users.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound(usecase.MsgEmployeeNotFound)
	}
	rec, err := uc.Build(ctx, user)
	if err != nil {
		return nil, err
	}
	return uc.render(format, []*Record{rec})
}

// Build arma el agregado de un usuario: perfil, departamento, saldo, asistencia y solicitudes.
func (uc *UseCase) Build(ctx context.Context, user *entity.User) (*Record, error) {
	rec := &Record{EmpID: user.EmpID, Email: user.Email, Role: string(user.Role)}
	profile, err := uc.repos.Profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar perfil: %w", err)
	}
	if profile != nil {
		rec.FullName = profile.FullName
	}
	if user.DepartmentID != nil {
		dept, err := uc.repos.Departments.GetByID(ctx, *user.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("buscar departamento: %w", err)
		}
		if dept != nil {
			rec.Department = dept.Name
		}
	}
	if rec.LeaveBalance, err = uc.balances.ForUser(ctx, user.ID); err != nil {
		return nil, err
	}
	if rec.Attendance, err = uc.repos.Attendance.ListByUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("listar asistencia: %w", err)
	}
	if rec.LeaveRequests, err = uc.repos.Leaves.ListByEmployee(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("listar solicitudes: %w", err)
	}
	sort.SliceStable(rec.Attendance, func(i, j int) bool { return rec.Attendance[i].Date.Before(rec.Attendance[j].Date) })
	sort.SliceStable(rec.LeaveRequests, func(i, j int) bool {
		return rec.LeaveRequests[i].StartDate.Before(rec.LeaveRequests[j].StartDate)
	})
	return rec, nil
}

func (uc *UseCase) render(format Format, recs []*Record) (*File, error) {
	return uc.renderWith(format, recs, false)
}

func (uc *UseCase) renderAll(format Format, recs []*Record) (*File, error) {
	return uc.renderWith(format, recs, true)
}

func (uc *UseCase) renderWith(format Format, recs []*Record, all bool) (*File, error) {
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("formato de exportación no soportado: %s", format)
	}
	var (
		data []byte
		err  error
	)
	if br, ok := r.(BatchRenderer); ok && all {
		data, err = br.RenderAll(recs)
	} else {
		data, err = r.Render(recs)
	}
	if err != nil {
		return nil, fmt.Errorf("generar %s: %w", format, err)
	}
	uc.metrics.Export(string(format))
	return &File{
		Filename:    "employee_data." + string(format),
		ContentType: contentTypes[format],
		Data:        data,
	}, nil
}
