package ledger

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/local"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/store"
)

func TestEventsTotal_EtiquetasPorTipoYResultado(t *testing.T) {
	b, err := local.Open(local.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	s := store.New(b, nil, zerolog.Nop())
	c := NewCoordinator(s, nil)
	ctx := context.Background()

	p := &entity.Product{Name: "Vela", Stock: 1, Price: decimal.NewFromInt(3)}
	require.NoError(t, s.Products().Create(ctx, p))

	ventaOK := testutil.ToFloat64(eventsTotal.WithLabelValues("venta", "ok"))
	ventaErr := testutil.ToFloat64(eventsTotal.WithLabelValues("venta", "error"))
	prodOK := testutil.ToFloat64(eventsTotal.WithLabelValues("produccion", "ok"))

	_, err = c.RecordSale(ctx, SaleInput{ProductID: p.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(3)})
	require.NoError(t, err)
	_, err = c.RecordSale(ctx, SaleInput{ProductID: p.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(3)})
	require.Error(t, err)
	_, err = c.RecordProduction(ctx, p.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, ventaOK+1, testutil.ToFloat64(eventsTotal.WithLabelValues("venta", "ok")))
	assert.Equal(t, ventaErr+1, testutil.ToFloat64(eventsTotal.WithLabelValues("venta", "error")))
	assert.Equal(t, prodOK+1, testutil.ToFloat64(eventsTotal.WithLabelValues("produccion", "ok")))
}
