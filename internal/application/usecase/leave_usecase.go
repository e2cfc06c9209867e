package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/leave"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

const (
	MsgLeaveNotFound     = "Leave request not found"
	MsgInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD"
	MsgStartAfterEnd     = "Start date cannot be after end date"
	MsgLeaveSubmitted    = "Leave request submitted successfully"
	MsgLeaveUpdated      = "Leave request updated successfully"
	MsgLeaveForwarded    = "Leave request forwarded to admin"
	MsgReasonRequired    = "Missing required field: reason"

	unknownEmployeeName = "Unknown"
	actorAdmin          = "admin"
	actorManager        = "manager"
)

// TransitionRecorder recibe cada cambio de estado aplicado. Lo implementa el paquete de métricas.
type TransitionRecorder interface {
	LeaveTransition(actor string, to entity.LeaveStatus)
}

type nopTransitions struct{}

func (nopTransitions) LeaveTransition(string, entity.LeaveStatus) {}

// LeaveUseCase flujo de solicitudes de vacaciones: alta, listados y transiciones.
type LeaveUseCase struct {
	repo     repository.LeaveRequestRepository
	balances *BalanceUseCase
	metrics  TransitionRecorder
	now      Clock
}

// NewLeaveUseCase construye el caso de uso. metrics puede ser nil.
func NewLeaveUseCase(repo repository.LeaveRequestRepository, balances *BalanceUseCase, metrics TransitionRecorder, now Clock) *LeaveUseCase {
	if metrics == nil {
		metrics = nopTransitions{}
	}
	return &LeaveUseCase{repo: repo, balances: balances, metrics: metrics, now: orSystem(now)}
}

// Submit crea una solicitud propia en pending_manager.
func (uc *LeaveUseCase) Submit(ctx context.Context, userID int64, in dto.SubmitLeaveRequest) (*dto.SubmitLeaveResponse, error) {
	start, err := time.Parse(dto.DateLayout, strings.TrimSpace(deref(in.StartDate)))
	if err != nil {
		return nil, domain.Invalid(MsgInvalidDateFormat)
	}
	end, err := time.Parse(dto.DateLayout, strings.TrimSpace(deref(in.EndDate)))
	if err != nil {
		return nil, domain.Invalid(MsgInvalidDateFormat)
	}
	if start.After(end) {
		return nil, domain.Invalid(MsgStartAfterEnd)
	}
	// reason es obligatorio como campo, pero puede venir vacío.
	if in.Reason == nil {
		return nil, domain.Invalid(MsgReasonRequired)
	}
	reason := *in.Reason
	now := uc.now()
	req := &entity.LeaveRequest{
		EmployeeID: userID,
		StartDate:  start,
		EndDate:    end,
		Reason:     reason,
		Status:     leave.InitialStatus,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("crear solicitud: %w", err)
	}
	return &dto.SubmitLeaveResponse{Message: MsgLeaveSubmitted, ID: req.ID, Status: string(req.Status)}, nil
}

// ListOwn solicitudes del usuario autenticado.
func (uc *LeaveUseCase) ListOwn(ctx context.Context, userID int64) (*dto.LeaveRequestListResponse, error) {
	reqs, err := uc.repo.ListByEmployee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar solicitudes: %w", err)
	}
	out := &dto.LeaveRequestListResponse{LeaveRequests: make([]dto.LeaveRequestDTO, 0, len(reqs))}
	for _, r := range reqs {
		out.LeaveRequests = append(out.LeaveRequests, dto.LeaveRequestDTO{
			ID:        r.ID,
			StartDate: r.StartDate.Format(dto.DateLayout),
			EndDate:   r.EndDate.Format(dto.DateLayout),
			Reason:    r.Reason,
			Status:    string(r.Status),
		})
	}
	return out, nil
}

// ListAll todas las solicitudes con nombre y saldo del empleado (admin).
func (uc *LeaveUseCase) ListAll(ctx context.Context) (*dto.AdminLeaveRequestListResponse, error) {
	rows, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar solicitudes: %w", err)
	}
	byUser := make(map[int64][]*entity.LeaveRequest)
	for _, r := range rows {
		req := r.LeaveRequest
		byUser[r.EmployeeID] = append(byUser[r.EmployeeID], &req)
	}
	year := uc.balances.Year()
	out := &dto.AdminLeaveRequestListResponse{LeaveRequests: make([]dto.AdminLeaveRequestDTO, 0, len(rows))}
	for _, r := range rows {
		name := r.EmployeeName
		if name == "" {
			name = unknownEmployeeName
		}
		out.LeaveRequests = append(out.LeaveRequests, dto.AdminLeaveRequestDTO{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			EmployeeName: name,
			StartDate:    r.StartDate.Format(dto.DateLayout),
			EndDate:      r.EndDate.Format(dto.DateLayout),
			Status:       string(r.Status),
			Reason:       r.Reason,
			LeaveBalance: leave.Balance(uc.balances.entitlement, year, byUser[r.EmployeeID]),
		})
	}
	return out, nil
}

// AdminSetStatus fija cualquier estado válido, sin importar el actual.
func (uc *LeaveUseCase) AdminSetStatus(ctx context.Context, id int64, in dto.UpdateLeaveStatusRequest) (*dto.LeaveStatusResponse, error) {
	req, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := leave.AdminSet(req.Status, in.Status)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, id, next, actorAdmin); err != nil {
		return nil, err
	}
	return &dto.LeaveStatusResponse{Message: MsgLeaveUpdated, ID: id, Status: string(next)}, nil
}

// ManagerForward pasa una solicitud de pending_manager a pending_admin.
func (uc *LeaveUseCase) ManagerForward(ctx context.Context, id int64) (*dto.LeaveStatusResponse, error) {
	req, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := leave.ManagerForward(req.Status)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, id, next, actorManager); err != nil {
		return nil, err
	}
	return &dto.LeaveStatusResponse{Message: MsgLeaveForwarded, ID: id, Status: string(next)}, nil
}

func (uc *LeaveUseCase) load(ctx context.Context, id int64) (*entity.LeaveRequest, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar solicitud: %w", err)
	}
	if req == nil {
		return nil, domain.NotFound(MsgLeaveNotFound)
	}
	return req, nil
}

func (uc *LeaveUseCase) apply(ctx context.Context, id int64, to entity.LeaveStatus, actor string) error {
	if err := uc.repo.UpdateStatus(ctx, id, to); err != nil {
		if domain.IsNotFound(err) {
			return domain.NotFound(MsgLeaveNotFound)
		}
		return fmt.Errorf("actualizar estado: %w", err)
	}
	uc.metrics.LeaveTransition(actor, to)
	return nil
}
