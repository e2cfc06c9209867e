// Package pdf genera el reporte de datos de un empleado con Maroto v2.
//
// Layout de la página Letter:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Employee Data Report + fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Employee Details: ID / Name / Email / Role / Dept / Saldo  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Attendance: Fecha | Estado | Entrada | Salida              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Leave Requests: Inicio | Fin | Motivo | Estado             │
//	└─────────────────────────────────────────────────────────────┘
//
// Maroto agrega páginas solo cuando se acaba el espacio vertical.
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/application/export"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.Renderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa export.Renderer usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: func() time.Time { return time.Now().UTC() }}
}

// Render genera el PDF de un único empleado y devuelve sus bytes.
func (g *MarotoPDFGenerator) Render(records []*export.Record) ([]byte, error) {
	if len(records) != 1 {
		return nil, fmt.Errorf("pdf: se esperaba un empleado, llegaron %d", len(records))
	}
	rec := records[0]

	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Employee Data Report", true).
		WithAuthor("rrhh-api", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Employee Details"))
	m.AddRows(detailRows(rec)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionRow("Attendance"))
	m.AddRows(tableHeaderRow("Date", "Status", "Check-in", "Check-out"))
	for _, a := range rec.Attendance {
		m.AddRows(tableRow(
			a.Date.Format(dto.DateLayout),
			a.Status,
			orNA(entity.FormatClock(a.CheckInTime)),
			orNA(entity.FormatClock(a.CheckOutTime)),
		))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionRow("Leave Requests"))
	m.AddRows(tableHeaderRow("Start", "End", "Reason", "Status"))
	for _, l := range rec.LeaveRequests {
		m.AddRows(tableRow(
			l.StartDate.Format(dto.DateLayout),
			l.EndDate.Format(dto.DateLayout),
			l.Reason,
			string(l.Status),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New("Employee Data Report", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New("Generated: "+now.Format(dto.DateLayout), props.Text{
			Size: 8, Align: align.Right, Top: 4, Color: colorGray,
		})),
	)
}

func sectionRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
	})))
}

// detailRows una fila etiqueta/valor por dato del empleado.
func detailRows(rec *export.Record) []core.Row {
	pairs := [][2]string{
		{"ID", rec.EmpID},
		{"Name", rec.FullName},
		{"Email", rec.Email},
		{"Role", rec.Role},
		{"Department", orNA(rec.Department)},
		{"Leave Balance", strconv.Itoa(rec.LeaveBalance)},
	}
	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(p[0]+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(9).Add(text.New(p[1], props.Text{Size: 9, Top: 1})),
		))
	}
	return rows
}

func tableHeaderRow(labels ...string) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for _, l := range labels {
		cols = append(cols, col.New(3).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(values ...string) core.Row {
	cols := make([]core.Col, 0, len(values))
	for _, v := range values {
		cols = append(cols, col.New(3).Add(text.New(v, props.Text{Size: 8, Top: 1})))
	}
	return row.New(6).Add(cols...)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
