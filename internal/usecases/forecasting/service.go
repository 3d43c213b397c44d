package forecasting

import (
	"context"

	"github.com/vfg2006/warehouse-insights-api/infrastructure/repository"
	"github.com/vfg2006/warehouse-insights-api/internal/config"
	"github.com/vfg2006/warehouse-insights-api/internal/domain"
	"github.com/vfg2006/warehouse-insights-api/pkg/log"
	"github.com/vfg2006/warehouse-insights-api/pkg/metrics"
)

// Forecaster expõe a série mensal de vendas e a previsão de demanda derivada dela
type Forecaster interface {
	// MonthlySales retorna o total de vendas por mês em ordem crescente
	MonthlySales(ctx context.Context) ([]domain.MonthlySales, error)

	// PredictDemand retorna a série real e a previsão para os meses 1..12
	PredictDemand(ctx context.Context) (*domain.DemandForecast, error)
}

type Service struct {
	salesRepo   repository.SalesRepository
	aggregation string
	metrics     *metrics.Metrics
}

func NewService(cfg *config.Config, salesRepo repository.SalesRepository) *Service {
	return &Service{
		salesRepo:   salesRepo,
		aggregation: cfg.Sales.Aggregation,
	}
}

// WithMetrics anexa o contador de previsões calculadas
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

func (s *Service) MonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	if s.aggregation == config.AggregationMemory {
		records, err := s.salesRepo.ListRecords(ctx)
		if err != nil {
			return nil, err
		}

		log.ForContext(ctx).WithField("records", len(records)).Debug("forecasting: agregando vendas em memória")
		return Aggregate(records), nil
	}

	return s.salesRepo.MonthlyTotals(ctx)
}

func (s *Service) PredictDemand(ctx context.Context) (*domain.DemandForecast, error) {
	actual, err := s.MonthlySales(ctx)
	if err != nil {
		return nil, err
	}

	predicted := Predict(MonthlyIndex(actual))
	s.metrics.ForecastComputed()

	return &domain.DemandForecast{
		Actual:    actual,
		Predicted: predicted,
	}, nil
}
