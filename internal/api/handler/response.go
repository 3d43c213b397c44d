package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/warehouse-insights-api/pkg/apiErrors"
	"github.com/vfg2006/warehouse-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa o payload inteiro antes de escrever o status, para nunca enviar resposta parcial
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao escrever resposta")
	}
}

// respondError registra a falha e responde com o código de API correspondente ao erro
func respondError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := apiErrors.CodeFor(err)
	log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
		"path":   r.URL.Path,
		"code":   code,
		"status": apiErrors.StatusFor(err),
	}).Error(message)
	apiErrors.WriteError(w, code, message, nil)
}
