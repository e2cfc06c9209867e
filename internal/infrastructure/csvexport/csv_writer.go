// Package csvexport escribe el reporte de empleados como CSV por secciones.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/application/export"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

var (
	_ export.Renderer      = (*Writer)(nil)
	_ export.BatchRenderer = (*Writer)(nil)
)

// blockTrailer sigue a cada bloque en el volcado de todos los usuarios.
const blockTrailer = "\n\n"

// Writer implementa export.Renderer.
type Writer struct{}

// NewWriter construye el renderer CSV.
func NewWriter() *Writer { return &Writer{} }

// Render un bloque por empleado, sin separador final.
func (Writer) Render(records []*export.Record) ([]byte, error) {
	return render(records, "")
}

// RenderAll como Render, pero cada bloque (también el último) termina en dos saltos de línea.
func (Writer) RenderAll(records []*export.Record) ([]byte, error) {
	return render(records, blockTrailer)
}

func render(records []*export.Record, trailer string) ([]byte, error) {
	var buf bytes.Buffer
	for _, rec := range records {
		if err := writeRecord(&buf, rec); err != nil {
			return nil, fmt.Errorf("csv %s: %w", rec.EmpID, err)
		}
		buf.WriteString(trailer)
	}
	return buf.Bytes(), nil
}

func writeRecord(buf *bytes.Buffer, rec *export.Record) error {
	rows := [][]string{
		{"Employee Details"},
		{"emp_id", "full_name", "email", "role", "department", "leave_balance"},
		{rec.EmpID, rec.FullName, rec.Email, rec.Role, rec.Department, strconv.Itoa(rec.LeaveBalance)},
	}
	if err := writeSection(buf, rows); err != nil {
		return err
	}

	buf.WriteString(crlf)
	rows = [][]string{
		{"Attendance"},
		{"date", "status", "check_in_time", "check_out_time"},
	}
	for _, a := range rec.Attendance {
		rows = append(rows, []string{
			a.Date.Format(dto.DateLayout),
			a.Status,
			entity.FormatClock(a.CheckInTime),
			entity.FormatClock(a.CheckOutTime),
		})
	}
	if err := writeSection(buf, rows); err != nil {
		return err
	}

	buf.WriteString(crlf)
	rows = [][]string{
		{"Leave Requests"},
		{"start_date", "end_date", "reason", "status"},
	}
	for _, l := range rec.LeaveRequests {
		rows = append(rows, []string{
			l.StartDate.Format(dto.DateLayout),
			l.EndDate.Format(dto.DateLayout),
			l.Reason,
			string(l.Status),
		})
	}
	return writeSection(buf, rows)
}

const crlf = "\r\n"

// writeSection escribe filas con fin de línea CRLF.
func writeSection(buf *bytes.Buffer, rows [][]string) error {
	w := csv.NewWriter(buf)
	w.UseCRLF = true
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
