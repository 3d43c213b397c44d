package domain

// MonthsInYear é a quantidade de meses previstos, sempre 1..12
const MonthsInYear = 12

type Prediction struct {
	Month     int   `json:"month"`
	Predicted int64 `json:"predicted"`
}

// DemandForecast reúne a série real agregada e a previsão para os 12 meses
type DemandForecast struct {
	Actual    []MonthlySales `json:"actual"`
	Predicted []Prediction   `json:"predicted"`
}
