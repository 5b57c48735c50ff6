package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
)

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "$0,00",
		"12.5":      "$12,50",
		"25000":     "$25.000,00",
		"1234567.5": "$1.234.567,50",
		"-1500.256": "-$1.500,26",
	}
	for in, want := range cases {
		assert.Equal(t, want, money(decimal.RequireFromString(in)), in)
	}
}

func TestRenderSummary(t *testing.T) {
	s := &dto.DailySummaryDTO{
		Date:        "2024-06-10",
		SalesCount:  3,
		UnitsSold:   5,
		Revenue:     decimal.RequireFromString("120.5"),
		CashBalance: decimal.RequireFromString("100"),
		LowStock:    []dto.StockAlert{{ProductID: 1, Name: "Vela", Stock: 2}},
		OutOfStock:  []dto.StockAlert{{ProductID: 2, Name: "Jabón"}},
	}
	doc, err := NewSummaryPDF("").RenderSummary(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRenderSummary_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSummaryPDF("x").RenderSummary(ctx, &dto.DailySummaryDTO{})
	assert.ErrorIs(t, err, context.Canceled)
}
