package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/warehouse-insights-api/internal/config"
	"github.com/vfg2006/warehouse-insights-api/pkg/log"
	"github.com/vfg2006/warehouse-insights-api/pkg/metrics"
)

// Conn é o contrato do banco usado pelo resto da aplicação
type Conn interface {
	Gateway
	Ping(context.Context) error
	Close() error
}

type Connection struct {
	db           *sql.DB
	queryTimeout time.Duration
	metrics      *metrics.Metrics
}

// NewConnection abre o pool do lib/pq a partir da configuração explícita e valida com um ping
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, newDataStoreError(OpConnect, err, "abrindo conexão com o postgres")
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	conn := &Connection{db: db, queryTimeout: cfg.QueryTimeout}
	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return conn, nil
}

// WithMetrics anexa os coletores de métricas de consulta
func (c *Connection) WithMetrics(m *metrics.Metrics) *Connection {
	c.metrics = m
	return c
}

func (c *Connection) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return newDataStoreError(OpPing, err, "testando conexão com o postgres")
	}
	return nil
}

func (c *Connection) Close() error {
	return c.db.Close()
}

// WithConn reserva uma conexão dedicada do pool, executa fn e devolve a conexão em
// qualquer caminho de saída, inclusive em panic.
func (c *Connection) WithConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return newDataStoreError(OpAcquire, err, "obtendo conexão do pool")
	}

	defer func() {
		if err := conn.Close(); err != nil && err != sql.ErrConnDone {
			log.L.WithError(err).Warn("postgres: erro ao devolver conexão ao pool")
		}
	}()

	return fn(conn)
}

func (c *Connection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.queryTimeout)
}
