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
)

const (
	MsgAttendanceExists    = "Attendance already marked for today"
	MsgAttendanceMarked    = "Attendance marked"
	MsgInvalidTimeFormat   = "Invalid time format. Use HH:MM or HH:MM:SS"
	MsgCheckOutBeforeCheck = "Check-out time cannot be before check-in time"
)

// AttendanceUseCase marca diaria e historiales de asistencia.
type AttendanceUseCase struct {
	users repository.UserRepository
	repo  repository.AttendanceRepository
	now   Clock
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(users repository.UserRepository, repo repository.AttendanceRepository, now Clock) *AttendanceUseCase {
	return &AttendanceUseCase{users: users, repo: repo, now: orSystem(now)}
}

// Mark registra la asistencia del día (UTC) del usuario. Una sola marca por día.
func (uc *AttendanceUseCase) Mark(ctx context.Context, userID int64, in dto.MarkAttendanceRequest) (*dto.MarkAttendanceResponse, error) {
	checkIn, err := parseOptionalClock(in.CheckInTime)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseOptionalClock(in.CheckOutTime)
	if err != nil {
		return nil, err
	}
	if checkIn != nil && checkOut != nil && checkOut.Seconds() < checkIn.Seconds() {
		return nil, domain.Invalid(MsgCheckOutBeforeCheck)
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entity.AttendanceStatusPresent
	}

	now := uc.now()
	day := today(now)
	existing, err := uc.repo.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("buscar asistencia: %w", err)
	}
	if existing != nil {
		return nil, domain.Conflict(MsgAttendanceExists)
	}
	rec := &entity.Attendance{
		UserID:       userID,
		Date:         day,
		Status:       status,
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		CreatedAt:    now,
	}
	if err := uc.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict(MsgAttendanceExists)
		}
		return nil, fmt.Errorf("registrar asistencia: %w", err)
	}
	return &dto.MarkAttendanceResponse{Message: MsgAttendanceMarked, Date: day.Format(dto.DateLayout), Status: status}, nil
}

// ListOwn historial del usuario autenticado.
func (uc *AttendanceUseCase) ListOwn(ctx context.Context, userID int64) (*dto.EmployeeAttendanceResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound(MsgEmployeeNotFound)
	}
	return uc.history(ctx, user)
}

// ListByEmpID historial de un empleado (admin).
func (uc *AttendanceUseCase) ListByEmpID(ctx context.Context, empID string) (*dto.EmployeeAttendanceResponse, error) {
	user, err := uc.users.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound(MsgEmployeeNotFound)
	}
	return uc.history(ctx, user)
}

// ListAll historial de todos los usuarios (admin).
func (uc *AttendanceUseCase) ListAll(ctx context.Context) (*dto.AllAttendanceResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := &dto.AllAttendanceResponse{AllAttendance: make([]dto.EmployeeAttendanceResponse, 0, len(users))}
	for _, u := range users {
		h, err := uc.history(ctx, u)
		if err != nil {
			return nil, err
		}
		out.AllAttendance = append(out.AllAttendance, *h)
	}
	return out, nil
}

func (uc *AttendanceUseCase) history(ctx context.Context, user *entity.User) (*dto.EmployeeAttendanceResponse, error) {
	recs, err := uc.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("listar asistencia: %w", err)
	}
	out := &dto.EmployeeAttendanceResponse{EmpID: user.EmpID, Attendance: make([]dto.AttendanceDTO, 0, len(recs))}
	for _, a := range recs {
		out.Attendance = append(out.Attendance, ToAttendanceDTO(a))
	}
	return out, nil
}

// ToAttendanceDTO convierte un registro; las horas ausentes quedan en null.
func ToAttendanceDTO(a *entity.Attendance) dto.AttendanceDTO {
	return dto.AttendanceDTO{
		Date:         a.Date.Format(dto.DateLayout),
		Status:       a.Status,
		CheckInTime:  clockPtr(a.CheckInTime),
		CheckOutTime: clockPtr(a.CheckOutTime),
	}
}

func clockPtr(c *entity.ClockTime) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

func parseOptionalClock(s *string) (*entity.ClockTime, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	c, err := entity.ParseClockTime(strings.TrimSpace(*s))
	if err != nil {
		return nil, domain.Invalid(MsgInvalidTimeFormat)
	}
	return &c, nil
}
