//go:build integration

// Pruebas contra PostgreSQL real vía testcontainers.
// Ejecutar con: go test -tags integration ./internal/infrastructure/postgres/...
package postgres

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
	"github.com/jhoicas/antorcha-inventario/pkg/config"
)

func setupBackend(t *testing.T) *Backend {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("antorcha_test"),
		tcPostgres.WithUsername("antorcha"),
		tcPostgres.WithPassword("antorcha"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// La clave viaja aparte, como REMOTE_KEY.
	u, err := url.Parse(pgURL)
	require.NoError(t, err)
	u.User = url.User("antorcha")

	pool, err := NewPool(ctx, config.RemoteConfig{URL: u.String(), Key: "antorcha", MaxConns: 4})
	require.NoError(t, err)
	b := NewBackend(pool)
	t.Cleanup(b.Close)

	require.NoError(t, b.Ping(ctx))
	require.NoError(t, b.Migrate(ctx))
	return b
}

func TestBackend_CRUDProductos(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	p := &entity.Product{Name: "Vela lavanda", Category: "Velas", Price: decimal.RequireFromString("12.50"), Stock: 4, Code: "VL-01"}
	require.NoError(t, b.Products().Create(ctx, p))
	require.Greater(t, p.ID, int64(0))

	got, err := b.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Vela lavanda", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "VL-01", got.Code)

	got.Name = "Vela lavanda XL"
	got.Stock = 99
	require.NoError(t, b.Products().Update(ctx, got))
	again, err := b.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vela lavanda XL", again.Name)
	assert.Equal(t, 4, again.Stock)
	assert.NotNil(t, again.UpdatedAt)

	require.NoError(t, b.Products().Delete(ctx, p.ID))
	gone, err := b.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.ErrorIs(t, b.Products().UpdateStock(ctx, p.ID, 1), domain.ErrNotFound)
}

func TestBackend_RunRollbackYRangoDeFechas(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	p := &entity.Product{Name: "Jabón", Price: decimal.NewFromInt(6), Stock: 3}
	require.NoError(t, b.Products().Create(ctx, p))

	err := b.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository, cash repository.CashRepository) error {
		cur, err := products.GetForUpdate(ctx, p.ID)
		if err != nil {
			return err
		}
		if err := products.UpdateStock(ctx, p.ID, cur.Stock-5); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	got, err := b.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	day := time.Now()
	start, end := entity.DayRange(day)
	saleID := int64(1)
	require.NoError(t, b.Cash().Create(ctx, &entity.CashMovement{Date: start, Kind: entity.CashIncome, Amount: decimal.NewFromInt(10), SaleID: &saleID, PaymentMethod: entity.PaymentCard}))
	require.NoError(t, b.Cash().Create(ctx, &entity.CashMovement{Date: end, Kind: entity.CashExpense, Amount: decimal.NewFromInt(4)}))
	require.NoError(t, b.Cash().Create(ctx, &entity.CashMovement{Date: end.Add(time.Millisecond), Kind: entity.CashIncome, Amount: decimal.NewFromInt(100)}))

	movs, err := b.Cash().ListBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.True(t, entity.Balance(movs).Equal(decimal.NewFromInt(6)))
	assert.Equal(t, entity.CashExpense, movs[0].Kind)
	require.NotNil(t, movs[1].SaleID)
	assert.Equal(t, saleID, *movs[1].SaleID)

	one, err := b.Cash().GetByID(ctx, movs[1].ID)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, entity.PaymentCard, one.PaymentMethod)
	missing, err := b.Cash().GetByID(ctx, movs[1].ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
