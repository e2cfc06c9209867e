package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/metrics"
)

func TestMiddleware_CuentaPorPlantillaDeRuta(t *testing.T) {
	p := metrics.New()
	app := fiber.New()
	app.Use(p.Middleware())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/metrics", p.Handler())

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/"+id, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(p.RequestsTotal.WithLabelValues("GET", "/items/:id", "204")))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "hrapi_http_requests_total")
}

func TestContadoresDeDominio(t *testing.T) {
	p := metrics.New()
	p.LeaveTransition("manager", entity.LeavePendingAdmin)
	p.LeaveTransition("manager", entity.LeavePendingAdmin)
	p.Export("csv")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.LeaveTransitions.WithLabelValues("manager", "pending_admin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Exports.WithLabelValues("csv")))
}
