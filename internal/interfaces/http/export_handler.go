package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rrhh-api/internal/application/export"
)

// ExportHandler descargas CSV, PDF y XLSX.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Self devuelve el handler de exportación propia en el formato dado.
//
// @Summary      Exportar mis datos
// @Tags         export
// @Produce      octet-stream
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /api/export-self [get]
// @Router       /api/export-self-pdf [get]
// @Router       /api/export-self-xlsx [get]
func (h *ExportHandler) Self(format export.Format) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := h.uc.Self(c.UserContext(), GetUserID(c), format)
		if err != nil {
			return writeError(c, err)
		}
		return sendFile(c, f)
	}
}

// Employee devuelve el handler de exportación de administración. Sin emp_id exporta a todos
// (salvo PDF).
//
// @Summary      Exportar datos de un empleado o de todos
// @Tags         export
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        emp_id  query  string  false  "código de empleado"
// @Success      200     {file}  file
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/admin/export-employee [get]
// @Router       /api/admin/export-employee-pdf [get]
// @Router       /api/admin/export-employee-xlsx [get]
func (h *ExportHandler) Employee(format export.Format) fiber.Handler {
	return func(c *fiber.Ctx) error {
		empID := strings.TrimSpace(c.Query("emp_id"))
		f, err := h.uc.Employee(c.UserContext(), empID, format)
		if err != nil {
			return writeError(c, err)
		}
		return sendFile(c, f)
	}
}

func sendFile(c *fiber.Ctx, f *export.File) error {
	c.Attachment(f.Filename)
	c.Set(fiber.HeaderContentType, f.ContentType)
	return c.Send(f.Data)
}
