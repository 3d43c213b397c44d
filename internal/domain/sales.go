package domain

// SalesRecord é uma linha bruta da tabela sales. O mês não é validado na escrita,
// então valores fora de 1..12 podem aparecer.
type SalesRecord struct {
	Month int   `json:"month"`
	Sales int64 `json:"sales"`
}

// MonthlySales é o total de vendas de um mês, uma entrada por mês distinto
type MonthlySales struct {
	Month int   `json:"month"`
	Sales int64 `json:"sales"`
}
