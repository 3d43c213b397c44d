package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/monitoring/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetSensorAlerts(t *testing.T) {
	tests := []struct {
		name       string
		rows       []postgres.Row
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "alertas em ordem de produto",
			rows: []postgres.Row{
				postgres.NewRow([]string{"product_id", "stock", "alert"}, []any{"P-001", int64(3), "LOW"}),
				postgres.NewRow([]string{"product_id", "stock", "alert"}, []any{"P-002", int64(0), "OUT"}),
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"sensor_alerts":[{"product_id":"P-001","stock":3,"alert":"LOW"},{"product_id":"P-002","stock":0,"alert":"OUT"}]}`,
		},
		{
			name:       "tabela vazia vira lista vazia",
			rows:       nil,
			wantStatus: http.StatusOK,
			wantBody:   `{"sensor_alerts":[]}`,
		},
		{
			name:       "falha no banco",
			err:        &postgres.DataStoreError{Op: postgres.OpQuery, Err: errors.New("relation does not exist")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"SRV_002","message":"Erro ao buscar alertas de estoque"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockMonitor(ctrl)
			service.EXPECT().SensorAlerts(gomock.Any()).Return(tt.rows, tt.err)

			rec := httptest.NewRecorder()
			GetSensorAlerts(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sensor-alert", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetRfidScans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []postgres.Row{
		postgres.NewRow(
			[]string{"product_id", "location", "timestamp"},
			[]any{"P-010", "Doca 2", time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		),
		postgres.NewRow(
			[]string{"product_id", "location", "timestamp"},
			[]any{"P-003", "Corredor 7", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
		),
	}

	service := mocks.NewMockMonitor(ctrl)
	service.EXPECT().RecentScans(gomock.Any()).Return(rows, nil)

	rec := httptest.NewRecorder()
	GetRfidScans(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rfid-scan", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rfid_scans":[
		{"product_id":"P-010","location":"Doca 2","timestamp":"2025-03-01T10:30:00Z"},
		{"product_id":"P-003","location":"Corredor 7","timestamp":"2025-03-01T09:00:00Z"}
	]}`, rec.Body.String())
}

func TestGetRfidScans_DataStoreFailureHasNoPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockMonitor(ctrl)
	service.EXPECT().RecentScans(gomock.Any()).
		Return(nil, &postgres.DataStoreError{Op: postgres.OpAcquire, Err: errors.New("pool esgotado")})

	rec := httptest.NewRecorder()
	GetRfidScans(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rfid-scan", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "rfid_scans")
}
