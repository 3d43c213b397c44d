// Package repository contém as consultas fixas ao banco do armazém
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres"
)

const (
	inventoryAlertsTable = "inventory_alerts"
)

type InventoryAlertRepository interface {
	ListAlerts(ctx context.Context) ([]postgres.Row, error)
}

type inventoryAlertRepository struct {
	gateway postgres.Gateway
}

func NewInventoryAlertRepository(gateway postgres.Gateway) InventoryAlertRepository {
	return &inventoryAlertRepository{
		gateway: gateway,
	}
}

// ListAlerts retorna todos os alertas de estoque ordenados por produto
func (r *inventoryAlertRepository) ListAlerts(ctx context.Context) ([]postgres.Row, error) {
	query, args, err := squirrel.
		Select("product_id", "stock", "alert").
		From(inventoryAlertsTable).
		OrderBy("product_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.gateway.Query(ctx, query, args...)
}
