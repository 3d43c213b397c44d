package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/warehouse-insights-api/internal/api/handler"
	"github.com/vfg2006/warehouse-insights-api/internal/api/handler/router"
	"github.com/vfg2006/warehouse-insights-api/internal/config"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/monitoring"
	"github.com/vfg2006/warehouse-insights-api/pkg/log"
	"github.com/vfg2006/warehouse-insights-api/pkg/metrics"
	"github.com/vfg2006/warehouse-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	forecaster forecasting.Forecaster,
	monitor monitoring.Monitor,
	pinger handler.Pinger,
	m *metrics.Metrics,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              config.Server.Addr(),
			Handler:           NewHandler(config, forecaster, monitor, pinger, m),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares: panic -> log/correlação -> métricas -> CORS
func NewHandler(
	config *config.Config,
	forecaster forecasting.Forecaster,
	monitor monitoring.Monitor,
	pinger handler.Pinger,
	m *metrics.Metrics,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(pinger)...),
		router.WithRoutes(handler.Monitoring(monitor)...),
		router.WithRoutes(handler.Forecasting(forecaster)...),
		router.WithRoutes(handler.Metrics(m.Handler())...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Metrics(m, rt.PathLabel),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
			serveErr <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
