package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/rrhh-api/internal/application/export"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/xlsx"
)

func TestRender_HojasLegiblesConExcelize(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	recs := []*export.Record{
		{
			EmpID: "E001", FullName: "Ana", Email: "ana@example.com", Role: "employee", LeaveBalance: 15,
			Attendance: []*entity.Attendance{{Date: start, Status: "present"}},
			LeaveRequests: []*entity.LeaveRequest{
				{StartDate: start, EndDate: start.AddDate(0, 0, 4), Reason: "viaje", Status: entity.LeaveApproved},
			},
		},
		{EmpID: "E002", FullName: "Luis", Email: "luis@example.com", Role: "manager", LeaveBalance: 20},
	}

	out, err := xlsx.NewGenerator().Render(recs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetEmployee, xlsx.SheetAttendance, xlsx.SheetLeave}, f.GetSheetList())

	rows, err := f.GetRows(xlsx.SheetEmployee)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "emp_id", rows[0][0])
	assert.Equal(t, []string{"E002", "Luis", "luis@example.com", "manager", "", "20"}, rows[2])

	leaves, err := f.GetRows(xlsx.SheetLeave)
	require.NoError(t, err)
	require.Len(t, leaves, 2)
	assert.Equal(t, []string{"E001", "2024-03-01", "2024-03-05", "viaje", "approved"}, leaves[1])
}
