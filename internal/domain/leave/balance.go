// Package leave contiene las reglas puras del flujo de ausencias: transiciones de estado
// y cálculo del saldo anual. No depende de la base de datos ni de HTTP.
package leave

import (
	"time"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// DefaultAnnualEntitlement cupo anual por defecto (días naturales).
const DefaultAnnualEntitlement = 20

// DaysInYear cuenta los días naturales de [start, end] que caen dentro del año,
// inclusivo en ambos extremos. Devuelve 0 si el rango no toca el año.
func DaysInYear(start, end time.Time, year int) int {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	s := truncateDay(start)
	e := truncateDay(end)
	if s.Before(yearStart) {
		s = yearStart
	}
	if e.After(yearEnd) {
		e = yearEnd
	}
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// UsedDays suma los días aprobados dentro del año. Las solicitudes que no están
// en estado approved nunca consumen saldo.
func UsedDays(requests []*entity.LeaveRequest, year int) int {
	used := 0
	for _, r := range requests {
		if r == nil || r.Status != entity.LeaveApproved {
			continue
		}
		used += DaysInYear(r.StartDate, r.EndDate, year)
	}
	return used
}

// Balance saldo restante = cupo anual - días aprobados del año.
// No se recorta en cero: un saldo negativo indica que se aprobó más de lo disponible.
func Balance(entitlement, year int, requests []*entity.LeaveRequest) int {
	return entitlement - UsedDays(requests, year)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
