package entity_test

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

func mov(kind, amount, method string) *entity.CashMovement {
	return &entity.CashMovement{Kind: kind, Amount: decimal.RequireFromString(amount), PaymentMethod: method}
}

func TestBalance_IngresosMenosEgresos(t *testing.T) {
	movs := []*entity.CashMovement{
		mov(entity.CashIncome, "100.50", entity.PaymentCash),
		mov(entity.CashExpense, "20.25", ""),
		mov(entity.CashIncome, "15", entity.PaymentCard),
		mov(entity.CashExpense, "5", entity.PaymentCard),
	}
	want := decimal.RequireFromString("90.25")
	assert.True(t, want.Equal(entity.Balance(movs)))

	// El orden de inserción no cambia el resultado.
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		rng.Shuffle(len(movs), func(a, b int) { movs[a], movs[b] = movs[b], movs[a] })
		assert.True(t, want.Equal(entity.Balance(movs)))
	}
}

func TestBalance_Vacio(t *testing.T) {
	assert.True(t, entity.Balance(nil).IsZero())
}

func TestBalanceByPayment_SinMetodoCuentaComoEfectivo(t *testing.T) {
	movs := []*entity.CashMovement{
		mov(entity.CashIncome, "10", entity.PaymentCash),
		mov(entity.CashIncome, "7", ""),
		mov(entity.CashExpense, "2", ""),
		mov(entity.CashIncome, "30", entity.PaymentCard),
	}
	b := entity.BalanceByPayment(movs)
	assert.Equal(t, "15", b.Cash.String())
	assert.Equal(t, "30", b.Card.String())
}

func TestDayRange_LimitesInclusivos(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ref := time.Date(2026, 3, 14, 15, 30, 0, 0, loc)
	start, end := entity.DayRange(ref)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, 999_000_000, loc), end)

	lastMs := time.Date(2026, 3, 14, 23, 59, 59, 999_000_000, loc)
	nextDay := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)
	assert.True(t, entity.InRange(start, start, end))
	assert.True(t, entity.InRange(lastMs, start, end))
	assert.False(t, entity.InRange(nextDay, start, end))
	assert.False(t, entity.InRange(start.Add(-time.Millisecond), start, end))
}

func TestToDecimal_Permisivo(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "0"},
		{"", "0"},
		{"abc", "0"},
		{"12.5", "12.5"},
		{" 7 ", "7"},
		{"12abc", "12"},
		{"-.5", "-0.5"},
		{"3.", "3"},
		{float64(2.25), "2.25"},
		{int64(4), "4"},
		{json.Number("19.99"), "19.99"},
		{decimal.RequireFromString("1.10"), "1.1"},
		{true, "0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.ToDecimal(c.in).String(), "%#v", c.in)
	}
}

func TestToDecimal_FueraDeRangoEsCero(t *testing.T) {
	for _, in := range []any{
		"1e1000000000",
		json.Number("1e5000000"),
		decimal.New(1, 5000000),
		"1e-31",
		strings.Repeat("9", entity.MaxDecimalDigits+1),
		float64(1e300),
	} {
		assert.True(t, entity.ToDecimal(in).IsZero(), "%v", in)
	}
	assert.Equal(t, "1000000000000000000000000000000", entity.ToDecimal("1e30").String())
	assert.Equal(t, "0.001", entity.ToDecimal("1e-3").String())
}

func TestBalance_MontoEnormeNoBloquea(t *testing.T) {
	movs := []*entity.CashMovement{
		{Kind: entity.CashIncome, Amount: entity.ToDecimal("1e1000000000")},
		{Kind: entity.CashIncome, Amount: decimal.NewFromInt(10)},
		{Kind: entity.CashExpense, Amount: entity.ToDecimal(json.Number("1e-1000000000"))},
	}
	done := make(chan decimal.Decimal, 1)
	go func() { done <- entity.Balance(movs) }()
	select {
	case got := <-done:
		assert.Equal(t, "10", got.String())
	case <-time.After(time.Second):
		t.Fatal("Balance no terminó")
	}
}

func TestDecimalInRange(t *testing.T) {
	assert.True(t, entity.DecimalInRange(decimal.RequireFromString("12.50")))
	assert.True(t, entity.DecimalInRange(decimal.Zero))
	assert.True(t, entity.DecimalInRange(decimal.New(1, entity.MaxDecimalExponent)))
	assert.False(t, entity.DecimalInRange(decimal.New(1, entity.MaxDecimalExponent+1)))
	assert.False(t, entity.DecimalInRange(decimal.New(1, -entity.MaxDecimalExponent-1)))
	assert.False(t, entity.DecimalInRange(decimal.RequireFromString(strings.Repeat("1", entity.MaxDecimalDigits+1))))
}

func TestToInt_Permisivo(t *testing.T) {
	assert.Equal(t, 0, entity.ToInt(nil))
	assert.Equal(t, 0, entity.ToInt("x"))
	assert.Equal(t, 12, entity.ToInt("12 unidades"))
	assert.Equal(t, 3, entity.ToInt(3.9))
	assert.Equal(t, 5, entity.ToInt(json.Number("5")))
	assert.Equal(t, 8, entity.ToInt(int32(8)))
	assert.Nil(t, entity.ToOptionalID(nil))
	assert.Nil(t, entity.ToOptionalID(0))
	assert.Equal(t, int64(9), *entity.ToOptionalID("9"))
}

func TestToTime(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	assert.True(t, ts.Equal(entity.ToTime(ts.Format(time.RFC3339Nano))))
	assert.True(t, ts.Equal(entity.ToTime(ts)))
	assert.True(t, entity.ToTime("no es fecha").IsZero())
	assert.Nil(t, entity.ToOptionalTime(nil))
}

func TestSaleTotalYValorInventario(t *testing.T) {
	s := &entity.Sale{Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")}
	assert.Equal(t, "7.5", s.Total().String())

	p := &entity.Product{Price: decimal.RequireFromString("4"), Stock: 5}
	assert.Equal(t, "20", p.InventoryValue().String())
	p.Stock = 0
	assert.True(t, p.InventoryValue().IsZero())
}
