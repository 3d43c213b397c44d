package handler

import (
	"net/http"

	"github.com/vfg2006/warehouse-insights-api/internal/domain"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/forecasting"
)

type salesResponse struct {
	Sales []domain.MonthlySales `json:"sales"`
}

// GetSales retorna o total de vendas por mês
func GetSales(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.MonthlySales(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao buscar vendas mensais")
			return
		}

		if sales == nil {
			sales = []domain.MonthlySales{}
		}

		writeJSON(w, r, http.StatusOK, salesResponse{Sales: sales})
	}
}

// GetDemandPrediction retorna as vendas reais e a previsão de demanda para os 12 meses
func GetDemandPrediction(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forecast, err := service.PredictDemand(r.Context())
		if err != nil {
			respondError(w, r, err, "Erro ao calcular previsão de demanda")
			return
		}

		if forecast.Actual == nil {
			forecast.Actual = []domain.MonthlySales{}
		}
		if forecast.Predicted == nil {
			forecast.Predicted = []domain.Prediction{}
		}

		writeJSON(w, r, http.StatusOK, forecast)
	}
}
