// Package store implementa el almacenamiento dual: remoto primero cuando está
// configurado y, ante cualquier fallo del remoto, la misma llamada contra el
// backend local. El modo se decide una vez al construir el Store.
package store

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
)

// Modos de operación reportados por Status.
const (
	ModeRemote = "remote+local"
	ModeLocal  = "local"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "antorcha_store_operations_total",
		Help: "Operaciones de almacenamiento por backend y operación",
	}, []string{"backend", "op"})

	fallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "antorcha_store_fallbacks_total",
		Help: "Llamadas que fallaron en el remoto y se repitieron en local",
	}, []string{"op"})
)

var _ repository.TxRunner = (*Store)(nil)

// Store almacenamiento dual.
type Store struct {
	local  repository.Backend
	remote repository.Backend
	log    zerolog.Logger

	products *Products
	sales    *Sales
	cash     *Cash
}

// New construye el Store. remote es nil cuando no hay credenciales remotas.
func New(local, remote repository.Backend, log zerolog.Logger) *Store {
	s := &Store{local: local, remote: remote, log: log}
	s.products = &Products{s: s}
	s.sales = &Sales{s: s}
	s.cash = &Cash{s: s}
	return s
}

// Mode devuelve ModeRemote si hay backend remoto configurado.
func (s *Store) Mode() string {
	if s.remote != nil {
		return ModeRemote
	}
	return ModeLocal
}

func (s *Store) Products() *Products { return s.products }
func (s *Store) Sales() *Sales       { return s.sales }
func (s *Store) Cash() *Cash         { return s.cash }

// Run ejecuta fn en una transacción del remoto; si el remoto falla, la operación
// completa se repite en una transacción local. Los errores de negocio devueltos
// por fn se propagan sin fallback.
func (s *Store) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	cash repository.CashRepository,
) error) error {
	return exec(ctx, s, "run", func(b repository.Backend) error {
		return b.Run(ctx, fn)
	})
}

// Status estado de la conexión.
type Status struct {
	Mode             string
	RemoteConfigured bool
	RemoteReachable  bool
	RemoteError      string
}

// Status consulta si el remoto responde. Sin remoto configurado no hace I/O.
func (s *Store) Status(ctx context.Context) Status {
	st := Status{Mode: s.Mode(), RemoteConfigured: s.remote != nil}
	if s.remote == nil {
		return st
	}
	if err := s.remote.Ping(ctx); err != nil {
		st.RemoteError = err.Error()
		return st
	}
	st.RemoteReachable = true
	return st
}

// call ejecuta fn contra el remoto y, si falla por indisponibilidad, contra el local.
func call[T any](ctx context.Context, s *Store, op string, fn func(b repository.Backend) (T, error)) (T, error) {
	if s.remote != nil {
		operationsTotal.WithLabelValues(s.remote.Name(), op).Inc()
		v, err := fn(s.remote)
		if err == nil || !errors.Is(err, domain.ErrRemoteUnavailable) || ctx.Err() != nil {
			return v, err
		}
		fallbacksTotal.WithLabelValues(op).Inc()
		s.log.Warn().Err(err).Str("op", op).Msg("remoto no disponible, usando almacenamiento local")
	}
	operationsTotal.WithLabelValues(s.local.Name(), op).Inc()
	return fn(s.local)
}

func exec(ctx context.Context, s *Store, op string, fn func(b repository.Backend) error) error {
	_, err := call(ctx, s, op, func(b repository.Backend) (struct{}, error) {
		return struct{}{}, fn(b)
	})
	return err
}
