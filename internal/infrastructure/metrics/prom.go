// Package metrics expone métricas Prometheus: HTTP por ruta y contadores de dominio
// (transiciones de vacaciones, exportaciones).
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

const namespace = "hrapi"

// Prom agrupa los collectors de la API.
type Prom struct {
	reg prometheus.Gatherer

	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	LeaveTransitions *prometheus.CounterVec
	Exports          *prometheus.CounterVec
}

// New registra los collectors en un registry propio (más los de proceso y runtime de Go).
func New() *Prom {
	reg := prometheus.NewRegistry()
	p := &Prom{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method"},
		),
		LeaveTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "leave_transitions_total",
				Help:      "Leave request status changes by actor and target status.",
			},
			[]string{"actor", "to"},
		),
		Exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Generated employee data exports by format.",
			},
			[]string{"format"},
		),
	}
	reg.MustRegister(
		p.RequestsTotal, p.RequestsDuration, p.InFlight, p.LeaveTransitions, p.Exports,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// Middleware mide cada request. La ruta es la plantilla (/api/admin/leave-requests/:id),
// no la URL concreta, para acotar la cardinalidad.
func (p *Prom) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		method := c.Method()
		p.InFlight.WithLabelValues(method).Inc()
		defer p.InFlight.WithLabelValues(method).Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		code := strconv.Itoa(status)
		p.RequestsTotal.WithLabelValues(method, route, code).Inc()
		p.RequestsDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler sirve la exposición de Prometheus en fiber.
func (p *Prom) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{}))
}

// LeaveTransition implementa usecase.TransitionRecorder.
func (p *Prom) LeaveTransition(actor string, to entity.LeaveStatus) {
	p.LeaveTransitions.WithLabelValues(actor, string(to)).Inc()
}

// Export implementa export.Recorder.
func (p *Prom) Export(format string) {
	p.Exports.WithLabelValues(format).Inc()
}
