// Package metrics define os coletores Prometheus da API e o handler de scrape.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os coletores Prometheus usados pela API
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	QueryDuration        prometheus.Histogram
	QueryErrorsTotal     *prometheus.CounterVec
	ForecastsTotal       prometheus.Counter

	registry *prometheus.Registry
}

// New cria os coletores e os registra em um registry próprio
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de requisições HTTP por método, rota e status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Latência das requisições HTTP em segundos.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Requisições HTTP em processamento.",
			},
		),
		QueryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "datastore_query_duration_seconds",
				Help:    "Latência das consultas ao banco do armazém em segundos.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
		QueryErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datastore_query_errors_total",
				Help: "Total de falhas de consulta ao banco por operação.",
			},
			[]string{"op"},
		),
		ForecastsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "demand_forecasts_total",
				Help: "Total de previsões de demanda calculadas.",
			},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.QueryDuration,
		m.QueryErrorsTotal,
		m.ForecastsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler retorna o handler HTTP de scrape do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveQuery registra a duração de uma consulta
func (m *Metrics) ObserveQuery(seconds float64) {
	if m == nil {
		return
	}
	m.QueryDuration.Observe(seconds)
}

// QueryFailed contabiliza uma falha de consulta
func (m *Metrics) QueryFailed(op string) {
	if m == nil {
		return
	}
	m.QueryErrorsTotal.WithLabelValues(op).Inc()
}

// ForecastComputed contabiliza uma previsão calculada
func (m *Metrics) ForecastComputed() {
	if m == nil {
		return
	}
	m.ForecastsTotal.Inc()
}
