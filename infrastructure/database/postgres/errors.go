package postgres

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/warehouse-insights-api/pkg/apiErrors"
)

// Operações do banco que podem falhar
const (
	OpConnect = "connect"
	OpAcquire = "acquire"
	OpQuery   = "query"
	OpScan    = "scan"
	OpIterate = "iterate"
	OpPing    = "ping"
)

// DataStoreError representa uma falha de conexão ou de execução de consulta no banco do armazém.
// Os handlers propagam esse erro como falha do servidor, sem retry nem payload parcial.
type DataStoreError struct {
	Op  string
	Err error
}

func (e *DataStoreError) Error() string {
	return fmt.Sprintf("datastore %s: %v", e.Op, e.Err)
}

func (e *DataStoreError) Unwrap() error {
	return e.Err
}

func (e *DataStoreError) APICode() string {
	return apiErrors.ErrDatabaseOperation
}

func newDataStoreError(op string, err error, message string) *DataStoreError {
	return &DataStoreError{Op: op, Err: errors.Wrap(err, message)}
}

// IsDataStoreError indica se err (ou algum erro encadeado) é um DataStoreError
func IsDataStoreError(err error) bool {
	var dsErr *DataStoreError
	return errors.As(err, &dsErr)
}
