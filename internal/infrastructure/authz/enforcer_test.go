package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/authz"
)

func TestEnforcer_CoincideConTablaDeCapacidades(t *testing.T) {
	enf, err := authz.NewEnforcer(entity.RoleCapabilities)
	require.NoError(t, err)

	caps := []entity.Capability{
		entity.CapEmployeesManage, entity.CapDepartmentsManage, entity.CapLeaveReview,
		entity.CapLeaveForward, entity.CapAttendanceViewAll, entity.CapBalanceViewAll, entity.CapExportAny,
	}
	for _, role := range entity.Roles() {
		for _, c := range caps {
			ok, err := enf.Allowed(role, c)
			require.NoError(t, err)
			assert.Equal(t, role.Can(c), ok, "%s / %s", role, c)
		}
	}
}

func TestEnforcer_SinJerarquia(t *testing.T) {
	enf, err := authz.NewEnforcer(entity.RoleCapabilities)
	require.NoError(t, err)

	ok, err := enf.Allowed(entity.RoleAdmin, entity.CapLeaveForward)
	require.NoError(t, err)
	assert.False(t, ok, "admin no hereda capacidades de manager")

	ok, err = enf.Allowed(entity.RoleManager, entity.CapLeaveReview)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = enf.Allowed(entity.Role("root"), entity.CapExportAny)
	require.NoError(t, err)
	assert.False(t, ok, "rol desconocido no tiene capacidades")
}
