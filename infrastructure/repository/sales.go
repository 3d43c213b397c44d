package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/warehouse-insights-api/internal/domain"
)

const (
	salesTable = "sales"
)

type SalesRepository interface {
	// MonthlyTotals agrega no banco: uma linha por mês, soma das vendas, ordem crescente de mês.
	// Vendas sem mês ficam de fora, já que nenhuma previsão consulta esse grupo.
	MonthlyTotals(ctx context.Context) ([]domain.MonthlySales, error)
	// ListRecords devolve as linhas brutas para agregação em memória
	ListRecords(ctx context.Context) ([]domain.SalesRecord, error)
}

type salesRepository struct {
	gateway postgres.Gateway
}

func NewSalesRepository(gateway postgres.Gateway) SalesRepository {
	return &salesRepository{
		gateway: gateway,
	}
}

func (r *salesRepository) MonthlyTotals(ctx context.Context) ([]domain.MonthlySales, error) {
	query, args, err := squirrel.
		Select("month", "COALESCE(SUM(sales), 0) AS sales").
		From(salesTable).
		Where(squirrel.NotEq{"month": nil}).
		GroupBy("month").
		OrderBy("month").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.gateway.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	totals := make([]domain.MonthlySales, 0, len(rows))
	for _, row := range rows {
		if row.IsNull("month") {
			continue
		}
		month, sales, err := scanMonthAndSales(row)
		if err != nil {
			return nil, err
		}
		totals = append(totals, domain.MonthlySales{Month: month, Sales: sales})
	}

	return totals, nil
}

func (r *salesRepository) ListRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select("month", "sales").
		From(salesTable).
		Where(squirrel.NotEq{"month": nil}).
		Where(squirrel.NotEq{"sales": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.gateway.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows))
	for _, row := range rows {
		if row.IsNull("month") {
			continue
		}
		month, sales, err := scanMonthAndSales(row)
		if err != nil {
			return nil, err
		}
		records = append(records, domain.SalesRecord{Month: month, Sales: sales})
	}

	return records, nil
}

func scanMonthAndSales(row postgres.Row) (int, int64, error) {
	month, err := row.Int64("month")
	if err != nil {
		return 0, 0, &postgres.DataStoreError{Op: postgres.OpScan, Err: fmt.Errorf("erro ao ler mês: %w", err)}
	}

	sales, err := row.Int64("sales")
	if err != nil {
		return 0, 0, &postgres.DataStoreError{Op: postgres.OpScan, Err: fmt.Errorf("erro ao ler vendas: %w", err)}
	}

	return int(month), sales, nil
}
