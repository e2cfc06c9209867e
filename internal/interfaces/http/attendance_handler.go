package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/application/usecase"
)

// AttendanceHandler marcación diaria y consultas de asistencia.
type AttendanceHandler struct {
	uc *usecase.AttendanceUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Mark godoc
// @Summary      Marcar asistencia de hoy
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MarkAttendanceRequest  false  "status, check_in_time, check_out_time"
// @Success      201   {object}  dto.MarkAttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var in dto.MarkAttendanceRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Mark(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOwn godoc
// @Summary      Mi historial de asistencia
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EmployeeAttendanceResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) ListOwn(c *fiber.Ctx) error {
	out, err := h.uc.ListOwn(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByEmpID godoc
// @Summary      Asistencia de un empleado
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        emp_id  path  string  true  "código de empleado"
// @Success      200     {object}  dto.EmployeeAttendanceResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/admin/attendance/{emp_id} [get]
func (h *AttendanceHandler) ListByEmpID(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmpID(c.UserContext(), c.Params("emp_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Asistencia de todos los empleados
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AllAttendanceResponse
// @Router       /api/admin/attendance [get]
func (h *AttendanceHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
