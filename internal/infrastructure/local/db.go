// Package local implementa el backend local sobre BadgerDB: el almacenamiento
// embebido que se usa cuando el remoto no está configurado o falla.
//
// Cada tabla (productos, ventas, caja) es un prefijo de claves
// "<tabla>/<id de 20 dígitos>" cuyo valor es el registro camelCase en JSON.
// Los ids salen de una secuencia Badger por tabla (autoincremental, desde 1).
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

var _ repository.Backend = (*Backend)(nil)

// sequenceBandwidth es cuántos ids reserva cada secuencia por escritura en disco.
const sequenceBandwidth = 50

// Config configuración del almacenamiento local.
type Config struct {
	// Path directorio de los archivos de Badger; se ignora si InMemory.
	Path     string
	InMemory bool
	// SyncWrites fuerza fsync en cada commit.
	SyncWrites bool
	// GCInterval cada cuánto se intenta compactar el value log (0 = nunca).
	GCInterval     time.Duration
	GCDiscardRatio float64
	Logger         zerolog.Logger
}

// DefaultConfig valores para producción en el directorio indicado.
func DefaultConfig(path string) Config {
	return Config{
		Path:           path,
		SyncWrites:     true,
		GCInterval:     5 * time.Minute,
		GCDiscardRatio: 0.5,
		Logger:         zerolog.Nop(),
	}
}

// InMemoryConfig configuración sin disco, para tests.
func InMemoryConfig() Config {
	return Config{InMemory: true, Logger: zerolog.Nop()}
}

// Backend almacenamiento local (BadgerDB).
type Backend struct {
	db   *badger.DB
	seqs map[string]*badger.Sequence
	gc   *gcRunner
	log  zerolog.Logger
}

// Open abre (o crea) la base local.
func Open(cfg Config) (*Backend, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("local: path requerido para base persistente")
	}
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("local: crear directorio %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(&badgerLogger{log: cfg.Logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("local: abrir badger: %w", err)
	}

	b := &Backend{db: db, seqs: make(map[string]*badger.Sequence, 3), log: cfg.Logger}
	for _, table := range []string{record.TableProducts, record.TableSales, record.TableCash} {
		seq, err := db.GetSequence([]byte("seq/"+table), sequenceBandwidth)
		if err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("local: secuencia %s: %w", table, err)
		}
		b.seqs[table] = seq
	}
	if cfg.GCInterval > 0 && !cfg.InMemory {
		b.gc = newGCRunner(db, cfg.GCInterval, cfg.GCDiscardRatio, cfg.Logger)
		b.gc.start()
	}
	return b, nil
}

// Close libera las secuencias, detiene el GC y cierra la base.
func (b *Backend) Close() error {
	if b.gc != nil {
		b.gc.stop()
	}
	for name, seq := range b.seqs {
		if err := seq.Release(); err != nil {
			b.log.Warn().Err(err).Str("table", name).Msg("liberar secuencia")
		}
	}
	return b.db.Close()
}

// Name identifica el backend en logs y métricas.
func (b *Backend) Name() string { return "local" }

// Ping falla si la base ya fue cerrada.
func (b *Backend) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.db.IsClosed() {
		return errors.New("local: base cerrada")
	}
	return nil
}

// Products repositorio de productos con una transacción por llamada.
func (b *Backend) Products() repository.ProductRepository {
	return &ProductRepo{q: dbQuerier{b.db}, t: b.table(record.TableProducts)}
}

// Sales repositorio de ventas con una transacción por llamada.
func (b *Backend) Sales() repository.SaleRepository {
	return &SaleRepo{q: dbQuerier{b.db}, t: b.table(record.TableSales)}
}

// Cash repositorio de caja con una transacción por llamada.
func (b *Backend) Cash() repository.CashRepository {
	return &CashRepo{q: dbQuerier{b.db}, t: b.table(record.TableCash)}
}

// Run ejecuta fn en una única transacción de lectura/escritura. Si fn falla no
// se escribe nada; un conflicto con otra transacción devuelve domain.ErrConflict.
func (b *Backend) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	cash repository.CashRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		q := txnQuerier{txn}
		return fn(
			&ProductRepo{q: q, t: b.table(record.TableProducts)},
			&SaleRepo{q: q, t: b.table(record.TableSales)},
			&CashRepo{q: q, t: b.table(record.TableCash)},
		)
	})
	return mapConflict(err)
}

func (b *Backend) table(name string) table {
	return table{name: name, seq: b.seqs[name]}
}

func mapConflict(err error) error {
	if errors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}
