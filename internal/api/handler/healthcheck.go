package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/warehouse-insights-api/pkg/apiErrors"
	"github.com/vfg2006/warehouse-insights-api/pkg/log"
)

// Pinger verifica se o banco do armazém está acessível
type Pinger interface {
	Ping(ctx context.Context) error
}

type statusResponse struct {
	Status string `json:"status"`
}

// HealthcheckHandler responde que o processo está de pé, sem tocar no banco
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, statusResponse{Status: "ok"})
	})
}

// ReadinessHandler só responde ok quando o banco responde ao ping
func ReadinessHandler(pinger Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := pinger.Ping(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Banco indisponível para readiness")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Banco de dados indisponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, statusResponse{Status: "ok"})
	})
}
