// Package monitoring expõe as leituras operacionais do armazém: alertas de estoque e leituras RFID.
package monitoring

import (
	"context"

	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/warehouse-insights-api/infrastructure/repository"
)

type Monitor interface {
	// SensorAlerts retorna os alertas de estoque como vieram do banco
	SensorAlerts(ctx context.Context) ([]postgres.Row, error)

	// RecentScans retorna as leituras RFID mais recentes primeiro
	RecentScans(ctx context.Context) ([]postgres.Row, error)
}

type Service struct {
	alertRepo repository.InventoryAlertRepository
	scanRepo  repository.RfidScanRepository
}

func NewService(alertRepo repository.InventoryAlertRepository, scanRepo repository.RfidScanRepository) *Service {
	return &Service{
		alertRepo: alertRepo,
		scanRepo:  scanRepo,
	}
}

func (s *Service) SensorAlerts(ctx context.Context) ([]postgres.Row, error) {
	return s.alertRepo.ListAlerts(ctx)
}

func (s *Service) RecentScans(ctx context.Context) ([]postgres.Row, error) {
	return s.scanRepo.ListRecent(ctx)
}
