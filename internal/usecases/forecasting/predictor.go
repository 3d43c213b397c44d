package forecasting

import "github.com/vfg2006/warehouse-insights-api/internal/domain"

// Predict calcula a demanda prevista para os meses 1..12 com a média dos dois meses anteriores.
//
// Para cada mês m:
//   - m-1 e m-2 presentes: piso de (m-1 + m-2) / 2, sem overflow (FloorMean)
//   - só m-1 presente: o valor de m-1
//   - caso contrário: o próprio valor de m, ou 0 se ausente
//
// As chaves m-1 e m-2 são consultadas literalmente (0 e -1 para janeiro e fevereiro),
// não há volta para o ano anterior.
func Predict(monthly map[int]int64) []domain.Prediction {
	predictions := make([]domain.Prediction, 0, domain.MonthsInYear)

	for month := 1; month <= domain.MonthsInYear; month++ {
		prev1, hasPrev1 := monthly[month-1]
		prev2, hasPrev2 := monthly[month-2]

		var predicted int64
		switch {
		case hasPrev1 && hasPrev2:
			predicted = FloorMean(prev1, prev2)
		case hasPrev1:
			predicted = prev1
		default:
			predicted = monthly[month]
		}

		predictions = append(predictions, domain.Prediction{Month: month, Predicted: predicted})
	}

	return predictions
}

// FloorDiv divide arredondando para menos infinito, ao contrário do operador / que trunca para zero
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMean calcula o piso de (a+b)/2 sem somar a e b, então não estoura nos extremos do int64
func FloorMean(a, b int64) int64 {
	return (a >> 1) + (b >> 1) + (a & b & 1)
}
