package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rrhh-api/internal/application/usecase"
)

// BalanceHandler saldos de vacaciones del año en curso.
type BalanceHandler struct {
	uc *usecase.BalanceUseCase
}

func NewBalanceHandler(uc *usecase.BalanceUseCase) *BalanceHandler {
	return &BalanceHandler{uc: uc}
}

// Self godoc
// @Summary      Mi saldo de vacaciones
// @Tags         balance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.LeaveBalanceResponse
// @Router       /api/leave-balance [get]
func (h *BalanceHandler) Self(c *fiber.Ctx) error {
	out, err := h.uc.Self(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByEmpID godoc
// @Summary      Saldo de un empleado
// @Tags         balance
// @Produce      json
// @Security     BearerAuth
// @Param        emp_id  path  string  true  "código de empleado"
// @Success      200     {object}  dto.LeaveBalanceResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/admin/leave-balance/{emp_id} [get]
func (h *BalanceHandler) ByEmpID(c *fiber.Ctx) error {
	out, err := h.uc.ByEmpID(c.UserContext(), c.Params("emp_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// All godoc
// @Summary      Saldos de todos los empleados
// @Tags         balance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.LeaveBalanceListResponse
// @Router       /api/admin/leave-balances [get]
func (h *BalanceHandler) All(c *fiber.Ctx) error {
	out, err := h.uc.All(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
