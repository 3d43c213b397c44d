package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres"
)

const (
	rfidLogsTable = "rfid_logs"

	// RecentScanLimit é o teto fixo de leituras RFID devolvidas
	RecentScanLimit = 200
)

type RfidScanRepository interface {
	ListRecent(ctx context.Context) ([]postgres.Row, error)
}

type rfidScanRepository struct {
	gateway postgres.Gateway
}

func NewRfidScanRepository(gateway postgres.Gateway) RfidScanRepository {
	return &rfidScanRepository{
		gateway: gateway,
	}
}

// ListRecent retorna as leituras RFID mais recentes primeiro
func (r *rfidScanRepository) ListRecent(ctx context.Context) ([]postgres.Row, error) {
	query, args, err := squirrel.
		Select("product_id", "location", "timestamp").
		From(rfidLogsTable).
		OrderBy("timestamp DESC").
		Limit(RecentScanLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.gateway.Query(ctx, query, args...)
}
