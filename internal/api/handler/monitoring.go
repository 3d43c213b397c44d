package handler

import (
	"net/http"

	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/monitoring"
)

type sensorAlertsResponse struct {
	SensorAlerts []postgres.Row `json:"sensor_alerts"`
}

type rfidScansResponse struct {
	RfidScans []postgres.Row `json:"rfid_scans"`
}

// GetSensorAlerts lista todos os alertas de estoque
func GetSensorAlerts(service monitoring.Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.SensorAlerts(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao buscar alertas de estoque")
			return
		}

		writeJSON(w, r, http.StatusOK, sensorAlertsResponse{SensorAlerts: rowsOrEmpty(alerts)})
	}
}

// GetRfidScans lista as leituras RFID mais recentes
func GetRfidScans(service monitoring.Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scans, err := service.RecentScans(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao buscar leituras RFID")
			return
		}

		writeJSON(w, r, http.StatusOK, rfidScansResponse{RfidScans: rowsOrEmpty(scans)})
	}
}

func rowsOrEmpty(rows []postgres.Row) []postgres.Row {
	if rows == nil {
		return []postgres.Row{}
	}
	return rows
}
