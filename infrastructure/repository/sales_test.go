package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/warehouse-insights-api/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/warehouse-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func monthSalesRow(month any, sales any) postgres.Row {
	return postgres.NewRow([]string{"month", "sales"}, []any{month, sales})
}

func TestSalesRepository_MonthlyTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(gateway *mocks.MockGateway)
		want    []domain.MonthlySales
		wantErr bool
	}{
		{
			name: "Agregação no banco - uma linha por mês em ordem crescente",
			setup: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().
					Query(ctx, "SELECT month, COALESCE(SUM(sales), 0) AS sales FROM sales WHERE month IS NOT NULL GROUP BY month ORDER BY month").
					Return([]postgres.Row{
						monthSalesRow(1, int64(100)),
						monthSalesRow(2, 250.0),
						monthSalesRow(3, int64(0)),
					}, nil)
			},
			want: []domain.MonthlySales{
				{Month: 1, Sales: 100},
				{Month: 2, Sales: 250},
				{Month: 3, Sales: 0},
			},
		},
		{
			name: "Tabela vazia - lista vazia e não nula",
			setup: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().Query(ctx, gomock.Any()).Return([]postgres.Row{}, nil)
			},
			want: []domain.MonthlySales{},
		},
		{
			name: "Grupo sem mês é ignorado",
			setup: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().
					Query(ctx, gomock.Any()).
					Return([]postgres.Row{
						monthSalesRow(int64(1), int64(10)),
						monthSalesRow(nil, int64(5)),
					}, nil)
			},
			want: []domain.MonthlySales{{Month: 1, Sales: 10}},
		},
		{
			name: "Falha do banco é propagada",
			setup: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().
					Query(ctx, gomock.Any()).
					Return(nil, &postgres.DataStoreError{Op: postgres.OpQuery, Err: errors.New("boom")})
			},
			wantErr: true,
		},
		{
			name: "Valor de vendas inválido vira erro do banco",
			setup: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().
					Query(ctx, gomock.Any()).
					Return([]postgres.Row{monthSalesRow(1, "abc")}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := mocks.NewMockGateway(ctrl)
			tt.setup(gateway)

			got, err := NewSalesRepository(gateway).MonthlyTotals(ctx)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, postgres.IsDataStoreError(err))
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSalesRepository_ListRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	gateway := mocks.NewMockGateway(ctrl)
	gateway.EXPECT().
		Query(ctx, "SELECT month, sales FROM sales WHERE month IS NOT NULL AND sales IS NOT NULL").
		Return([]postgres.Row{
			monthSalesRow(2, int64(10)),
			monthSalesRow(1, int64(5)),
			monthSalesRow(2, int64(7)),
		}, nil)

	got, err := NewSalesRepository(gateway).ListRecords(ctx)
	require.NoError(t, err)

	assert.Equal(t, []domain.SalesRecord{
		{Month: 2, Sales: 10},
		{Month: 1, Sales: 5},
		{Month: 2, Sales: 7},
	}, got)
}

func TestSalesRepository_ListRecordsSkipsRowsWithoutMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	gateway := mocks.NewMockGateway(ctrl)
	gateway.EXPECT().
		Query(ctx, gomock.Any()).
		Return([]postgres.Row{
			monthSalesRow(nil, int64(5)),
			monthSalesRow(int64(3), int64(8)),
		}, nil)

	got, err := NewSalesRepository(gateway).ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SalesRecord{{Month: 3, Sales: 8}}, got)
}
