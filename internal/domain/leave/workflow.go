package leave

import (
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// Mensajes expuestos al cliente.
const (
	MsgNotPendingManager = "Leave request is not pending manager approval"
	MsgInvalidStatus     = "Invalid status value"
	MsgStatusRequired    = "Status is required"
)

// InitialStatus estado con el que nace toda solicitud.
const InitialStatus = entity.LeavePendingManager

// ValidStatuses estados que un admin puede asignar.
func ValidStatuses() []entity.LeaveStatus {
	return []entity.LeaveStatus{
		entity.LeavePendingManager,
		entity.LeavePendingAdmin,
		entity.LeaveApproved,
		entity.LeaveRejected,
	}
}

// ParseStatus valida un estado recibido del cliente. El legado "pending" no es asignable
// y el valor vacío es inválido como cualquier otro.
func ParseStatus(s string) (entity.LeaveStatus, error) {
	for _, st := range ValidStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", domain.Invalid(MsgInvalidStatus)
}

// ManagerForward transición del manager: pending_manager -> pending_admin.
// El estado legado "pending" equivale a pending_manager.
// Cualquier otro estado devuelve error de validación y no modifica nada.
func ManagerForward(current entity.LeaveStatus) (entity.LeaveStatus, error) {
	switch current {
	case entity.LeavePendingManager, entity.LeavePendingLegacy:
		return entity.LeavePendingAdmin, nil
	default:
		return current, domain.Invalid(MsgNotPendingManager)
	}
}

// AdminSet override del admin: cualquier estado válido, sin importar el actual.
// target nil significa que el cliente no envió status.
func AdminSet(_ entity.LeaveStatus, target *string) (entity.LeaveStatus, error) {
	if target == nil {
		return "", domain.Invalid(MsgStatusRequired)
	}
	return ParseStatus(*target)
}
