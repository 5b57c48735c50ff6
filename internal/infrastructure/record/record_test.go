package record_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
	"github.com/jhoicas/antorcha-inventario/pkg/naming"
)

func TestProduct_IdaYVuelta(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	p := &entity.Product{
		ID: 4, Name: "Pendiente luna", Category: "Pendientes",
		Price: decimal.RequireFromString("24.90"), Stock: 3, Code: "PL-01", CreatedAt: now,
	}
	got := record.ToProduct(record.FromProduct(p))
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.True(t, p.Price.Equal(got.Price))
	assert.Equal(t, p.Stock, got.Stock)
	assert.Equal(t, p.Code, got.Code)
	assert.True(t, now.Equal(got.CreatedAt))
	assert.Nil(t, got.UpdatedAt)
}

func TestProduct_SinIDNoIncluyeClave(t *testing.T) {
	m := record.FromProduct(&entity.Product{Name: "x"})
	_, ok := m["id"]
	assert.False(t, ok)
}

func TestToProduct_FilaRemotaPocoTipada(t *testing.T) {
	row := naming.CamelMap(map[string]any{
		"id":         "12",
		"nombre":     "Anillo",
		"precio":     "15,5",
		"stock":      nil,
		"created_at": "2026-02-03T04:05:06Z",
	})
	p := record.ToProduct(row)
	assert.Equal(t, int64(12), p.ID)
	assert.Equal(t, "15", p.Price.String())
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, 2026, p.CreatedAt.Year())
}

func TestCash_VentaOpcional(t *testing.T) {
	saleID := int64(7)
	c := &entity.CashMovement{Kind: entity.CashIncome, Amount: decimal.NewFromInt(10), SaleID: &saleID, PaymentMethod: entity.PaymentCard}
	m := record.FromCash(c)
	require.Equal(t, int64(7), m["ventaId"])

	back := record.ToCash(m)
	require.NotNil(t, back.SaleID)
	assert.Equal(t, saleID, *back.SaleID)
	assert.Equal(t, entity.PaymentCard, back.PaymentMethod)

	manual := record.ToCash(record.FromCash(&entity.CashMovement{Kind: entity.CashExpense, Amount: decimal.NewFromInt(3)}))
	assert.Nil(t, manual.SaleID)
	assert.Empty(t, manual.PaymentMethod)
}

func TestSale_IdaYVuelta(t *testing.T) {
	s := &entity.Sale{ID: 2, ProductID: 9, Quantity: 4, UnitPrice: decimal.RequireFromString("1.25"),
		Kind: entity.SaleKindSale, PaymentMethod: entity.PaymentCash, Date: time.Unix(1700000000, 0).UTC()}
	got := record.ToSale(record.FromSale(s))
	assert.Equal(t, s.ProductID, got.ProductID)
	assert.Equal(t, s.Quantity, got.Quantity)
	assert.True(t, s.UnitPrice.Equal(got.UnitPrice))
	assert.Equal(t, s.Kind, got.Kind)
	assert.True(t, s.Date.Equal(got.Date))
}
