package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/terraincognita07/mcycle/internal/analytics"
)

const metricsNamespace = "mcycle"

// Telemetry owns a private registry so several apps can live in one process.
type Telemetry struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	summariesTotal  prometheus.Counter
	riskScore       prometheus.Histogram
	warningsTotal   *prometheus.CounterVec
}

func NewTelemetry() *Telemetry {
	telemetry := &Telemetry{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total number of handled API requests.",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of API request durations in seconds.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"route", "method"},
		),
		summariesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "insights_summaries_total",
			Help:      "Total number of insight summaries generated.",
		}),
		riskScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "pcos_risk_score",
			Help:      "Distribution of PCOS indicator scores in generated summaries.",
			Buckets:   prometheus.LinearBuckets(0, 1, analytics.MaxRiskScore+1),
		}),
		warningsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "pcos_warnings_total",
				Help:      "Total number of PCOS indicator warnings by type.",
			},
			[]string{"type"},
		),
	}

	telemetry.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		telemetry.requestsTotal,
		telemetry.requestDuration,
		telemetry.summariesTotal,
		telemetry.riskScore,
		telemetry.warningsTotal,
	)
	return telemetry
}

func (telemetry *Telemetry) Registry() *prometheus.Registry {
	return telemetry.registry
}

// Middleware records one observation per request, labelled by the matched
// route pattern rather than the raw path.
func (telemetry *Telemetry) Middleware(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}
	}

	route := "unmatched"
	if matched := c.Route(); matched != nil && matched.Path != "" && matched.Path != "/" {
		route = matched.Path
	}
	method := c.Method()

	telemetry.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	telemetry.requestDuration.WithLabelValues(route, method).Observe(time.Since(started).Seconds())
	return err
}

func (telemetry *Telemetry) ObserveSummary(summary analytics.Summary) {
	telemetry.summariesTotal.Inc()
	telemetry.riskScore.Observe(float64(summary.PCOSIndicators.RiskScore))
	for _, warning := range summary.PCOSIndicators.Warnings {
		telemetry.warningsTotal.WithLabelValues(warning.Type).Inc()
	}
}

func (telemetry *Telemetry) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(telemetry.registry, promhttp.HandlerOpts{}))
}
