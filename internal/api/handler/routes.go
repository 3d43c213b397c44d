package handler

import (
	"net/http"

	"github.com/vfg2006/warehouse-insights-api/internal/api/handler/router"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/monitoring"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/ready",
			Method:  http.MethodGet,
			Handler: ReadinessHandler(pinger),
		},
	}
}

func Monitoring(service monitoring.Monitor) []router.Route {
	return []router.Route{
		{
			Path:    "/sensor-alert",
			Method:  http.MethodGet,
			Handler: GetSensorAlerts(service),
		},
		{
			Path:    "/rfid-scan",
			Method:  http.MethodGet,
			Handler: GetRfidScans(service),
		},
	}
}

func Forecasting(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/sales",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
		{
			Path:    "/predict-demand",
			Method:  http.MethodGet,
			Handler: GetDemandPrediction(service),
		},
	}
}

// Metrics expõe o scrape do Prometheus
func Metrics(scrape http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: scrape,
		},
	}
}
