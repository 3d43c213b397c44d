package forecasting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/warehouse-insights-api/internal/domain"
)

func predictedFor(t *testing.T, predictions []domain.Prediction, month int) int64 {
	t.Helper()
	require.GreaterOrEqual(t, month, 1)
	require.LessOrEqual(t, month, len(predictions))
	require.Equal(t, month, predictions[month-1].Month)
	return predictions[month-1].Predicted
}

func TestPredict_AlwaysTwelveMonthsInOrder(t *testing.T) {
	inputs := []map[int]int64{
		nil,
		{},
		{1: 100, 2: 200},
		{0: 5, -1: 7, 13: 99, 40: 1},
		{1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6, 7: 7, 8: 8, 9: 9, 10: 10, 11: 11, 12: 12},
	}

	for _, monthly := range inputs {
		predictions := Predict(monthly)

		require.Len(t, predictions, 12)
		for i, prediction := range predictions {
			assert.Equal(t, i+1, prediction.Month)
		}
	}
}

func TestPredict_Rules(t *testing.T) {
	tests := []struct {
		name    string
		monthly map[int]int64
		month   int
		want    int64
	}{
		{
			name:    "dois meses anteriores - média",
			monthly: map[int]int64{1: 100, 2: 200},
			month:   3,
			want:    150,
		},
		{
			name:    "mês anterior ausente - usa o próprio mês",
			monthly: map[int]int64{1: 100, 2: 200},
			month:   4,
			want:    0,
		},
		{
			name:    "sem anteriores - usa o próprio mês",
			monthly: map[int]int64{5: 90},
			month:   5,
			want:    90,
		},
		{
			name:    "fevereiro com janeiro presente",
			monthly: map[int]int64{1: 50},
			month:   2,
			want:    50,
		},
		{
			name:    "média ímpar arredonda para baixo",
			monthly: map[int]int64{1: 100, 2: 201},
			month:   3,
			want:    150,
		},
		{
			name:    "média negativa usa piso e não truncamento",
			monthly: map[int]int64{1: -3, 2: 0},
			month:   3,
			want:    -2,
		},
		{
			name:    "janeiro consulta as chaves 0 e -1 literalmente",
			monthly: map[int]int64{0: 10, -1: 30, 1: 999},
			month:   1,
			want:    20,
		},
		{
			name:    "janeiro só com a chave 0",
			monthly: map[int]int64{0: 10, 1: 999},
			month:   1,
			want:    10,
		},
		{
			name:    "mês sem dados e sem anteriores vira zero",
			monthly: map[int]int64{},
			month:   7,
			want:    0,
		},
		{
			name:    "só m-2 presente não conta como anterior",
			monthly: map[int]int64{4: 80, 6: 33},
			month:   6,
			want:    33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, predictedFor(t, Predict(tt.monthly), tt.month))
		})
	}
}

func TestPredict_FullYear(t *testing.T) {
	monthly := map[int]int64{1: 100, 2: 200, 3: 300, 5: 500}

	got := Predict(monthly)

	assert.Equal(t, []domain.Prediction{
		{Month: 1, Predicted: 100},
		{Month: 2, Predicted: 100},
		{Month: 3, Predicted: 150},
		{Month: 4, Predicted: 250},
		{Month: 5, Predicted: 500}, // abril ausente
		{Month: 6, Predicted: 500},
		{Month: 7, Predicted: 0},
		{Month: 8, Predicted: 0},
		{Month: 9, Predicted: 0},
		{Month: 10, Predicted: 0},
		{Month: 11, Predicted: 0},
		{Month: 12, Predicted: 0},
	}, got)
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{a: 301, b: 2, want: 150},
		{a: 300, b: 2, want: 150},
		{a: -3, b: 2, want: -2},
		{a: -4, b: 2, want: -2},
		{a: 3, b: -2, want: -2},
		{a: -3, b: -2, want: 1},
		{a: 0, b: 2, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorDiv(tt.a, tt.b), "%d // %d", tt.a, tt.b)
	}
}

func TestFloorMean(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{a: 100, b: 200, want: 150},
		{a: 100, b: 201, want: 150},
		{a: -3, b: 0, want: -2},
		{a: -3, b: -2, want: -3},
		{a: math.MaxInt64, b: math.MaxInt64, want: math.MaxInt64},
		{a: math.MaxInt64, b: math.MaxInt64 - 1, want: math.MaxInt64 - 1},
		{a: math.MinInt64, b: math.MinInt64, want: math.MinInt64},
		{a: math.MaxInt64, b: math.MinInt64, want: -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorMean(tt.a, tt.b), "floor((%d + %d) / 2)", tt.a, tt.b)
	}
}

func TestPredict_ExtremeValuesDoNotWrap(t *testing.T) {
	got := Predict(map[int]int64{1: math.MaxInt64, 2: math.MaxInt64, 4: math.MinInt64, 5: math.MinInt64})

	assert.Equal(t, int64(math.MaxInt64), predictedFor(t, got, 3))
	assert.Equal(t, int64(math.MinInt64), predictedFor(t, got, 6))
}
