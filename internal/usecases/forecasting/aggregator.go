package forecasting

import (
	"sort"

	"github.com/vfg2006/warehouse-insights-api/internal/domain"
)

// Aggregate soma as vendas por mês: uma entrada por mês presente na origem, em ordem crescente de mês
func Aggregate(records []domain.SalesRecord) []domain.MonthlySales {
	totals := make(map[int]int64, len(records))
	for _, record := range records {
		totals[record.Month] += record.Sales
	}

	monthly := make([]domain.MonthlySales, 0, len(totals))
	for month, sales := range totals {
		monthly = append(monthly, domain.MonthlySales{Month: month, Sales: sales})
	}

	sort.Slice(monthly, func(i, j int) bool {
		return monthly[i].Month < monthly[j].Month
	})

	return monthly
}

// MonthlyIndex indexa a série mensal por mês
func MonthlyIndex(monthly []domain.MonthlySales) map[int]int64 {
	index := make(map[int]int64, len(monthly))
	for _, entry := range monthly {
		index[entry.Month] = entry.Sales
	}
	return index
}
