package postgres

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
)

var _ repository.Backend = (*Backend)(nil)

//go:embed schema.sql
var schema string

// Backend almacenamiento remoto: repositorios sobre el pool más el TxRunner.
type Backend struct {
	*TxRunner
	pool *pgxpool.Pool
}

// NewBackend construye el backend remoto sobre un pool ya creado.
func NewBackend(pool *pgxpool.Pool) *Backend {
	return &Backend{TxRunner: NewTxRunner(pool), pool: pool}
}

func (b *Backend) Name() string { return "remote" }

func (b *Backend) Products() repository.ProductRepository { return NewProductRepository(b.pool) }
func (b *Backend) Sales() repository.SaleRepository       { return NewSaleRepository(b.pool) }
func (b *Backend) Cash() repository.CashRepository        { return NewCashRepository(b.pool) }

// Ping verifica la conexión (equivale a consultar una fila de productos).
func (b *Backend) Ping(ctx context.Context) error {
	return wrap("ping", b.pool.Ping(ctx))
}

// Migrate crea las tablas si no existen.
func (b *Backend) Migrate(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, schema)
	return wrap("migrate", err)
}

// Close cierra el pool.
func (b *Backend) Close() {
	b.pool.Close()
}
