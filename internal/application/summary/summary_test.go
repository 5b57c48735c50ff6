package summary

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

type fakeProducts []*entity.Product

func (f fakeProducts) List(context.Context) ([]*entity.Product, error) { return f, nil }

type fakeSales []*entity.Sale

func (f fakeSales) ListByDate(context.Context, time.Time) ([]*entity.Sale, error) { return f, nil }

type fakeCash []*entity.CashMovement

func (f fakeCash) ListByDate(context.Context, time.Time) ([]*entity.CashMovement, error) {
	return f, nil
}

type fakePDF struct{ calls int }

func (f *fakePDF) RenderSummary(context.Context, *dto.DailySummaryDTO) ([]byte, error) {
	f.calls++
	return []byte("%PDF-1.4"), nil
}

type fakeMailer struct{ sent []Message }

func (f *fakeMailer) Send(_ context.Context, msg Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

var day = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func newUseCase(opts ...Option) *UseCase {
	products := fakeProducts{
		{ID: 1, Name: "Vela", Price: decimal.NewFromInt(10), Stock: 3},
		{ID: 2, Name: "Jabón", Price: decimal.NewFromInt(5), Stock: 0},
		{ID: 3, Name: "Aceite", Price: decimal.NewFromInt(20), Stock: 40},
		{ID: 4, Name: "Ambar", Price: decimal.NewFromInt(8), Stock: 5},
	}
	sales := fakeSales{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(10), Kind: entity.SaleKindSale, PaymentMethod: entity.PaymentCash},
		{ProductID: 3, Quantity: 1, UnitPrice: decimal.RequireFromString("19.5"), Kind: entity.SaleKindSale, PaymentMethod: entity.PaymentCard},
		{ProductID: 3, Quantity: 30, Kind: entity.SaleKindProduction},
	}
	cash := fakeCash{
		{Kind: entity.CashIncome, Amount: decimal.NewFromInt(20), PaymentMethod: entity.PaymentCash},
		{Kind: entity.CashIncome, Amount: decimal.RequireFromString("19.5"), PaymentMethod: entity.PaymentCard},
		{Kind: entity.CashExpense, Amount: decimal.NewFromInt(7)},
	}
	return NewUseCase(products, sales, cash, opts...)
}

func TestBuild(t *testing.T) {
	s, err := newUseCase().Build(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10", s.Date)
	assert.Equal(t, 2, s.SalesCount)
	assert.Equal(t, 3, s.UnitsSold)
	assert.True(t, s.Revenue.Equal(decimal.RequireFromString("39.5")), s.Revenue.String())
	assert.True(t, s.CashIncome.Equal(decimal.RequireFromString("39.5")))
	assert.True(t, s.CashExpense.Equal(decimal.NewFromInt(7)))
	assert.True(t, s.CashBalance.Equal(decimal.RequireFromString("32.5")))
	assert.True(t, s.ByPayment.Cash.Equal(decimal.NewFromInt(13)))
	assert.True(t, s.ByPayment.Card.Equal(decimal.RequireFromString("19.5")))
	assert.True(t, s.InventoryValue.Equal(decimal.NewFromInt(870)), s.InventoryValue.String())

	require.Len(t, s.LowStock, 2)
	assert.Equal(t, "Vela", s.LowStock[0].Name)
	assert.Equal(t, "Ambar", s.LowStock[1].Name)
	require.Len(t, s.OutOfStock, 1)
	assert.Equal(t, int64(2), s.OutOfStock[0].ProductID)
}

func TestBuild_UmbralConfigurable(t *testing.T) {
	s, err := newUseCase(WithLowStock(3)).Build(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, s.LowStock, 1)
	assert.Equal(t, "Vela", s.LowStock[0].Name)
}

func TestText(t *testing.T) {
	uc := newUseCase()
	txt, err := uc.Text(context.Background(), day)
	require.NoError(t, err)

	assert.Contains(t, txt, "Resumen del día 10 de Junio de 2024")
	assert.Contains(t, txt, "Ventas: 2 (3 unidades)")
	assert.Contains(t, txt, "Total vendido: 39.50")
	assert.Contains(t, txt, "  - Vela: 3")
	assert.Contains(t, txt, "Agotados:\n  - Jabón")
}

func TestMailtoURL(t *testing.T) {
	uc := newUseCase(WithRecipient("dueña@example.com"))
	link, err := uc.Mailto(context.Background(), day, "")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(link, "mailto:"))
	assert.NotContains(t, link, "+")
	assert.NotContains(t, link, " ")

	u, err := url.Parse(link)
	require.NoError(t, err)
	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Resumen del día 2024-06-10", q.Get("subject"))
	assert.Contains(t, q.Get("body"), "Total vendido: 39.50")
	assert.Equal(t, "due%C3%B1a@example.com", u.Opaque)
}

func TestPDF_SinGenerador(t *testing.T) {
	_, err := newUseCase().PDF(context.Background(), day)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestSend(t *testing.T) {
	t.Run("sin SMTP", func(t *testing.T) {
		err := newUseCase().Send(context.Background(), day, "a@b.co")
		assert.ErrorIs(t, err, domain.ErrNotConfigured)
	})

	t.Run("sin destinatario", func(t *testing.T) {
		err := newUseCase(WithMailer(&fakeMailer{})).Send(context.Background(), day, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("con PDF adjunto", func(t *testing.T) {
		mailer := &fakeMailer{}
		pdf := &fakePDF{}
		uc := newUseCase(WithMailer(mailer), WithPDF(pdf), WithRecipient("caja@example.com"))

		require.NoError(t, uc.Send(context.Background(), day, ""))
		require.Len(t, mailer.sent, 1)
		msg := mailer.sent[0]
		assert.Equal(t, []string{"caja@example.com"}, msg.To)
		assert.Equal(t, "Resumen del día 2024-06-10", msg.Subject)
		require.Len(t, msg.Attachments, 1)
		assert.Equal(t, "resumen-2024-06-10.pdf", msg.Attachments[0].Name)
		assert.Equal(t, 1, pdf.calls)
	})
}
