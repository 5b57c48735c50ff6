package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/application/ledger"
	"github.com/jhoicas/antorcha-inventario/internal/application/usecase"
	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/local"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/store"
)

type env struct {
	store    *store.Store
	products *usecase.ProductUseCase
	sales    *usecase.SaleUseCase
	cash     *usecase.CashUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	b, err := local.Open(local.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	s := store.New(b, nil, zerolog.Nop())
	coord := ledger.NewCoordinator(s, memory.NewKeyedMutex())
	return &env{
		store:    s,
		products: usecase.NewProductUseCase(s.Products()),
		sales:    usecase.NewSaleUseCase(coord, s.Sales(), s.Products()),
		cash:     usecase.NewCashUseCase(s.Cash()),
	}
}

func ptr[T any](v T) *T { return &v }

// ─── productos ───────────────────────────────────────────────────────────────

func TestProduct_CreateValida(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.products.Create(ctx, dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.products.Create(ctx, dto.CreateProductRequest{Name: "Vela", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.products.Create(ctx, dto.CreateProductRequest{Name: "Vela", Stock: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := e.products.Create(ctx, dto.CreateProductRequest{Name: " Vela ", Price: decimal.RequireFromString("4.5"), Stock: 2})
	require.NoError(t, err)
	assert.Equal(t, "Vela", out.Name)
	assert.True(t, out.InventoryValue.Equal(decimal.NewFromInt(9)))
}

func TestProduct_UpdateNoCambiaStock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p, err := e.products.Create(ctx, dto.CreateProductRequest{Name: "Vela", Price: decimal.NewFromInt(5), Stock: 8})
	require.NoError(t, err)

	out, err := e.products.Update(ctx, p.ID, dto.UpdateProductRequest{Name: ptr("Vela XL"), Price: ptr(decimal.NewFromInt(7))})
	require.NoError(t, err)
	assert.Equal(t, "Vela XL", out.Name)
	assert.Equal(t, 8, out.Stock)

	_, err = e.products.Update(ctx, 999, dto.UpdateProductRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = e.products.Update(ctx, p.ID, dto.UpdateProductRequest{Name: ptr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_DeleteAll(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	for _, n := range []string{"a", "b", "c"} {
		_, err := e.products.Create(ctx, dto.CreateProductRequest{Name: n})
		require.NoError(t, err)
	}
	n, err := e.products.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := e.products.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

// ─── ventas ──────────────────────────────────────────────────────────────────

func TestSale_ListConProductoEliminado(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a, err := e.products.Create(ctx, dto.CreateProductRequest{Name: "Vela", Price: decimal.NewFromInt(10), Stock: 5})
	require.NoError(t, err)
	b, err := e.products.Create(ctx, dto.CreateProductRequest{Name: "Jabón", Price: decimal.NewFromInt(4), Stock: 5})
	require.NoError(t, err)

	_, err = e.sales.Record(ctx, dto.RecordSaleRequest{ProductID: a.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(10)}, "")
	require.NoError(t, err)
	rec, err := e.sales.Record(ctx, dto.RecordSaleRequest{ProductID: b.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(4), PaymentMethod: "tarjeta"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Jabón", rec.Sale.ProductName)
	assert.Equal(t, 3, rec.RemainingStock)
	assert.True(t, rec.Sale.Total.Equal(decimal.NewFromInt(8)))

	_, err = e.sales.RecordProduction(ctx, a.ID, 3)
	require.NoError(t, err)

	require.NoError(t, e.products.Delete(ctx, b.ID))

	all, err := e.sales.List(ctx, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	ventas, err := e.sales.List(ctx, entity.SaleKindSale, nil)
	require.NoError(t, err)
	require.Equal(t, 2, ventas.Total)
	names := []string{ventas.Items[0].ProductName, ventas.Items[1].ProductName}
	assert.Contains(t, names, usecase.DeletedProductName)
	assert.Contains(t, names, "Vela")

	prod, err := e.sales.List(ctx, entity.SaleKindProduction, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, prod.Total)

	_, err = e.sales.List(ctx, "devolucion", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tomorrow := time.Now().AddDate(0, 0, 1)
	none, err := e.sales.List(ctx, "", &tomorrow)
	require.NoError(t, err)
	assert.Zero(t, none.Total)
}

// ─── caja ────────────────────────────────────────────────────────────────────

func TestCash_MovimientoManualYBalances(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.cash.Create(ctx, dto.CreateCashMovementRequest{Kind: "ingreso", Amount: decimal.Zero, Description: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.cash.Create(ctx, dto.CreateCashMovementRequest{Kind: "retiro", Amount: decimal.NewFromInt(1), Description: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.cash.Create(ctx, dto.CreateCashMovementRequest{Kind: "egreso", Amount: decimal.NewFromInt(1), Description: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.cash.Create(ctx, dto.CreateCashMovementRequest{Kind: "ingreso", Amount: decimal.NewFromInt(100), Description: "Fondo inicial"})
	require.NoError(t, err)
	_, err = e.cash.Create(ctx, dto.CreateCashMovementRequest{Kind: "ingreso", Amount: decimal.NewFromInt(30), Description: "Venta web", PaymentMethod: "tarjeta"})
	require.NoError(t, err)
	_, err = e.cash.Create(ctx, dto.CreateCashMovementRequest{Kind: "egreso", Amount: decimal.RequireFromString("12.5"), Description: "Cera"})
	require.NoError(t, err)

	bal, err := e.cash.Balance(ctx, nil)
	require.NoError(t, err)
	assert.True(t, bal.Total.Equal(decimal.RequireFromString("117.5")), bal.Total.String())
	assert.True(t, bal.Cash.Equal(decimal.RequireFromString("87.5")), bal.Cash.String())
	assert.True(t, bal.Card.Equal(decimal.NewFromInt(30)))
	assert.Empty(t, bal.Date)

	today := time.Now()
	day, err := e.cash.Balance(ctx, &today)
	require.NoError(t, err)
	assert.True(t, day.Total.Equal(bal.Total))
	assert.Equal(t, today.Format("2006-01-02"), day.Date)

	list, err := e.cash.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
}
