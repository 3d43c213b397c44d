package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Gateway executa consultas de leitura e devolve as linhas como mapeamentos ordenados coluna -> valor
type Gateway interface {
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
}

// Query executa uma consulta fixa em uma conexão dedicada, liberada ao final da chamada
func (c *Connection) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	start := time.Now()

	var result []Row
	err := c.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return newDataStoreError(OpQuery, err, "executando consulta")
		}
		defer rows.Close()

		result, err = scanRows(rows)
		return err
	})

	c.metrics.ObserveQuery(time.Since(start).Seconds())
	if err != nil {
		if dsErr, ok := err.(*DataStoreError); ok {
			c.metrics.QueryFailed(dsErr.Op)
		}
		return nil, err
	}

	return result, nil
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, newDataStoreError(OpScan, err, "lendo colunas do resultado")
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, newDataStoreError(OpScan, err, "escaneando linha")
		}

		for i, value := range values {
			values[i] = normalizeValue(value)
		}

		result = append(result, NewRow(columns, values))
	}

	if err := rows.Err(); err != nil {
		return nil, newDataStoreError(OpIterate, err, "iterando linhas")
	}

	return result, nil
}

// normalizeValue converte os []byte devolvidos pelo lib/pq (numeric, tipos desconhecidos)
// em valores nativos: inteiro, decimal ou texto.
func normalizeValue(value any) any {
	raw, ok := value.([]byte)
	if !ok {
		return value
	}

	text := string(raw)
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return text
}

// Row é uma linha de resultado que preserva a ordem das colunas consultadas
type Row struct {
	columns []string
	values  []any
}

func NewRow(columns []string, values []any) Row {
	return Row{columns: columns, values: values}
}

func (r Row) Columns() []string {
	return r.columns
}

func (r Row) Get(column string) (any, bool) {
	for i, name := range r.columns {
		if name == column {
			return r.values[i], true
		}
	}
	return nil, false
}

// IsNull indica se a coluna existe e é nula
func (r Row) IsNull(column string) bool {
	value, ok := r.Get(column)
	return ok && value == nil
}

// Int64 lê uma coluna numérica como inteiro
func (r Row) Int64(column string) (int64, error) {
	value, ok := r.Get(column)
	if !ok {
		return 0, fmt.Errorf("coluna %q ausente", column)
	}

	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("coluna %q não é inteira: %v", column, v)
		}
		// 2^63 não cabe em int64; MinInt64 é exato em float64
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("coluna %q fora do intervalo de int64: %v", column, v)
		}
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case nil:
		return 0, fmt.Errorf("coluna %q é nula", column)
	default:
		return 0, fmt.Errorf("coluna %q tem tipo inesperado %T", column, value)
	}
}

// MarshalJSON escreve o objeto com as chaves na ordem das colunas
func (r Row) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, column := range r.columns {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(column)
		stream.WriteVal(r.values[i])
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}
