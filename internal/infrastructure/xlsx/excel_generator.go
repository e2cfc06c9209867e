// Package xlsx genera el reporte de empleados como libro Excel con excelize.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/application/export"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// Nombres de hoja.
const (
	SheetEmployee   = "Employee"
	SheetAttendance = "Attendance"
	SheetLeave      = "Leave Requests"
)

var (
	employeeHeader   = []interface{}{"emp_id", "full_name", "email", "role", "department", "leave_balance"}
	attendanceHeader = []interface{}{"emp_id", "date", "status", "check_in_time", "check_out_time"}
	leaveHeader      = []interface{}{"emp_id", "start_date", "end_date", "reason", "status"}
)

var _ export.Renderer = (*Generator)(nil)

// Generator implementa export.Renderer. Cada hoja lleva emp_id para admitir varios empleados.
type Generator struct{}

// NewGenerator construye el renderer XLSX.
func NewGenerator() *Generator { return &Generator{} }

func (Generator) Render(records []*export.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetEmployee); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	for _, name := range []string{SheetAttendance, SheetLeave} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: crear hoja %s: %w", name, err)
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	sheets := map[string]*sheetWriter{
		SheetEmployee:   {f: f, name: SheetEmployee},
		SheetAttendance: {f: f, name: SheetAttendance},
		SheetLeave:      {f: f, name: SheetLeave},
	}
	headers := map[string][]interface{}{
		SheetEmployee:   employeeHeader,
		SheetAttendance: attendanceHeader,
		SheetLeave:      leaveHeader,
	}
	for name, w := range sheets {
		if err := w.append(headers[name]); err != nil {
			return nil, err
		}
		last, _ := excelize.CoordinatesToCellName(len(headers[name]), 1)
		if err := f.SetCellStyle(name, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
		}
	}

	for _, rec := range records {
		if err := sheets[SheetEmployee].append([]interface{}{
			rec.EmpID, rec.FullName, rec.Email, rec.Role, rec.Department, rec.LeaveBalance,
		}); err != nil {
			return nil, err
		}
		for _, a := range rec.Attendance {
			if err := sheets[SheetAttendance].append([]interface{}{
				rec.EmpID, a.Date.Format(dto.DateLayout), a.Status,
				entity.FormatClock(a.CheckInTime), entity.FormatClock(a.CheckOutTime),
			}); err != nil {
				return nil, err
			}
		}
		for _, l := range rec.LeaveRequests {
			if err := sheets[SheetLeave].append([]interface{}{
				rec.EmpID, l.StartDate.Format(dto.DateLayout), l.EndDate.Format(dto.DateLayout),
				l.Reason, string(l.Status),
			}); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter agrega filas consecutivas a una hoja.
type sheetWriter struct {
	f    *excelize.File
	name string
	next int
}

func (w *sheetWriter) append(values []interface{}) error {
	w.next++
	cell, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	if err := w.f.SetSheetRow(w.name, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d de %s: %w", w.next, w.name, err)
	}
	return nil
}
