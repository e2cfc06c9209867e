package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/leave"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func req(status entity.LeaveStatus, start, end time.Time) *entity.LeaveRequest {
	return &entity.LeaveRequest{Status: status, StartDate: start, EndDate: end}
}

func TestDaysInYear_RangoDentroDelAnio(t *testing.T) {
	assert.Equal(t, 3, leave.DaysInYear(date(2024, 1, 10), date(2024, 1, 12), 2024))
}

func TestDaysInYear_MismoDia(t *testing.T) {
	assert.Equal(t, 1, leave.DaysInYear(date(2024, 6, 1), date(2024, 6, 1), 2024))
}

func TestDaysInYear_RecortaAlCruzarAnio(t *testing.T) {
	// 28-31 dic 2023 (4 días) + 1-3 ene 2024 (3 días)
	assert.Equal(t, 4, leave.DaysInYear(date(2023, 12, 28), date(2024, 1, 3), 2023))
	assert.Equal(t, 3, leave.DaysInYear(date(2023, 12, 28), date(2024, 1, 3), 2024))
}

func TestDaysInYear_FueraDelAnio(t *testing.T) {
	assert.Equal(t, 0, leave.DaysInYear(date(2023, 3, 1), date(2023, 3, 5), 2024))
}

func TestDaysInYear_AnioBisiesto(t *testing.T) {
	assert.Equal(t, 366, leave.DaysInYear(date(2024, 1, 1), date(2024, 12, 31), 2024))
}

func TestBalance_SoloCuentanAprobadas(t *testing.T) {
	requests := []*entity.LeaveRequest{
		req(entity.LeaveApproved, date(2024, 1, 10), date(2024, 1, 12)), // 3
		req(entity.LeavePendingManager, date(2024, 2, 1), date(2024, 2, 10)),
		req(entity.LeavePendingAdmin, date(2024, 3, 1), date(2024, 3, 10)),
		req(entity.LeaveRejected, date(2024, 4, 1), date(2024, 4, 10)),
		req(entity.LeavePendingLegacy, date(2024, 5, 1), date(2024, 5, 10)),
		req(entity.LeaveApproved, date(2024, 7, 1), date(2024, 7, 2)), // 2
	}
	assert.Equal(t, 5, leave.UsedDays(requests, 2024))
	assert.Equal(t, 15, leave.Balance(20, 2024, requests))
}

func TestBalance_SinSolicitudesDevuelveCupo(t *testing.T) {
	assert.Equal(t, leave.DefaultAnnualEntitlement, leave.Balance(leave.DefaultAnnualEntitlement, 2024, nil))
}

func TestBalance_PuedeSerNegativo(t *testing.T) {
	requests := []*entity.LeaveRequest{
		req(entity.LeaveApproved, date(2024, 1, 1), date(2024, 1, 31)),
	}
	assert.Equal(t, -11, leave.Balance(20, 2024, requests))
}
