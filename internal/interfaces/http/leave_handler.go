package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/application/usecase"
	"github.com/jhoicas/rrhh-api/internal/domain"
)

// LeaveHandler solicitudes de vacaciones: propias, revisión de admin y reenvío de manager.
type LeaveHandler struct {
	uc *usecase.LeaveUseCase
}

// NewLeaveHandler construye el handler.
func NewLeaveHandler(uc *usecase.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// ListOwn godoc
// @Summary      Mis solicitudes de vacaciones
// @Tags         leave
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.LeaveRequestListResponse
// @Router       /api/leave [get]
func (h *LeaveHandler) ListOwn(c *fiber.Ctx) error {
	out, err := h.uc.ListOwn(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Solicitar vacaciones
// @Tags         leave
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SubmitLeaveRequest  true  "start_date, end_date (YYYY-MM-DD), reason"
// @Success      201   {object}  dto.SubmitLeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leave [post]
func (h *LeaveHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitLeaveRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Submit(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAll godoc
// @Summary      Todas las solicitudes con nombre y saldo del empleado
// @Tags         leave
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AdminLeaveRequestListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/leave-requests [get]
func (h *LeaveHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AdminSetStatus godoc
// @Summary      Fijar estado de una solicitud (admin)
// @Tags         leave
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                          true  "id de la solicitud"
// @Param        body  body  dto.UpdateLeaveStatusRequest  true  "status"
// @Success      200   {object}  dto.LeaveStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/leave-requests/{id} [put]
func (h *LeaveHandler) AdminSetStatus(c *fiber.Ctx) error {
	id, err := leaveID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateLeaveStatusRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AdminSetStatus(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ManagerForward godoc
// @Summary      Reenviar solicitud al admin (manager)
// @Tags         leave
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "id de la solicitud"
// @Success      200  {object}  dto.LeaveStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/leave-requests/{id} [put]
func (h *LeaveHandler) ManagerForward(c *fiber.Ctx) error {
	id, err := leaveID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ManagerForward(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// leaveID un id no numérico no puede existir: 404.
func leaveID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NotFound(usecase.MsgLeaveNotFound)
	}
	return id, nil
}
