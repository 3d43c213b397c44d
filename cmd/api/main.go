package main

import (
	"context"

	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/warehouse-insights-api/infrastructure/repository"
	"github.com/vfg2006/warehouse-insights-api/internal/api"
	"github.com/vfg2006/warehouse-insights-api/internal/config"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/warehouse-insights-api/internal/usecases/monitoring"
	"github.com/vfg2006/warehouse-insights-api/pkg/log"
	"github.com/vfg2006/warehouse-insights-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Environment)
	log.L.WithFields(log.Fields{
		"aggregation": cfg.Sales.Aggregation,
		"origins":     cfg.Cors.AllowedOrigins,
	}).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	pgConn := pgconn(ctx, cfg.Database).WithMetrics(m)
	defer func() {
		if err := pgConn.Close(); err != nil {
			log.L.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}()

	salesRepo := repository.NewSalesRepository(pgConn)
	alertRepo := repository.NewInventoryAlertRepository(pgConn)
	scanRepo := repository.NewRfidScanRepository(pgConn)

	forecastService := forecasting.NewService(cfg, salesRepo).WithMetrics(m)
	monitorService := monitoring.NewService(alertRepo, scanRepo)

	server, err := api.New(cfg, forecastService, monitorService, pgConn, m)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Servidor finalizado com erro")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
