// Package summary arma el resumen diario (ventas, caja, inventario y alertas de
// stock) y lo entrega como texto, enlace mailto:, PDF o correo SMTP.
package summary

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/antorcha-inventario/internal/application/analytics"
	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

// DefaultLowStock umbral por defecto de stock bajo.
const DefaultLowStock = 5

// DailyCashMovements movimientos de caja de un día.
type DailyCashMovements interface {
	ListByDate(ctx context.Context, d time.Time) ([]*entity.CashMovement, error)
}

// UseCase resumen diario.
type UseCase struct {
	products  analytics.ProductLister
	sales     analytics.DailySales
	cash      DailyCashMovements
	pdf       PDFRenderer
	mailer    Mailer
	lowStock  int
	defaultTo string
	now       func() time.Time
}

// Option configura el UseCase.
type Option func(*UseCase)

// WithMailer habilita el envío por SMTP.
func WithMailer(m Mailer) Option { return func(uc *UseCase) { uc.mailer = m } }

// WithPDF habilita el PDF del resumen.
func WithPDF(r PDFRenderer) Option { return func(uc *UseCase) { uc.pdf = r } }

// WithLowStock fija el umbral de stock bajo.
func WithLowStock(n int) Option { return func(uc *UseCase) { uc.lowStock = n } }

// WithRecipient destinatario por defecto.
func WithRecipient(to string) Option { return func(uc *UseCase) { uc.defaultTo = to } }

// NewUseCase construye el caso de uso.
func NewUseCase(products analytics.ProductLister, sales analytics.DailySales, cash DailyCashMovements, opts ...Option) *UseCase {
	uc := &UseCase{products: products, sales: sales, cash: cash, lowStock: DefaultLowStock, now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Today fecha actual según el reloj del caso de uso.
func (uc *UseCase) Today() time.Time { return uc.now() }

// Build calcula el resumen del día calendario de date.
func (uc *UseCase) Build(ctx context.Context, date time.Time) (*dto.DailySummaryDTO, error) {
	sales, err := uc.sales.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("resumen: ventas: %w", err)
	}
	movs, err := uc.cash.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("resumen: caja: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: productos: %w", err)
	}

	s := &dto.DailySummaryDTO{
		Date:           date.Format("2006-01-02"),
		Revenue:        decimal.Zero,
		CashIncome:     decimal.Zero,
		CashExpense:    decimal.Zero,
		InventoryValue: decimal.Zero,
		LowStock:       []dto.StockAlert{},
		OutOfStock:     []dto.StockAlert{},
	}
	for _, sale := range sales {
		if sale.Kind != entity.SaleKindSale {
			continue
		}
		s.SalesCount++
		s.UnitsSold += sale.Quantity
		s.Revenue = s.Revenue.Add(sale.Total())
	}
	for _, m := range movs {
		switch m.Kind {
		case entity.CashIncome:
			s.CashIncome = s.CashIncome.Add(m.Amount)
		case entity.CashExpense:
			s.CashExpense = s.CashExpense.Add(m.Amount)
		}
	}
	s.CashBalance = entity.Balance(movs)
	byPayment := entity.BalanceByPayment(movs)
	s.ByPayment = dto.PaymentBreakdown{Cash: byPayment.Cash, Card: byPayment.Card}

	for _, p := range products {
		s.InventoryValue = s.InventoryValue.Add(p.InventoryValue())
		alert := dto.StockAlert{ProductID: p.ID, Name: p.Name, Stock: p.Stock}
		switch {
		case p.Stock <= 0:
			s.OutOfStock = append(s.OutOfStock, alert)
		case p.Stock <= uc.lowStock:
			s.LowStock = append(s.LowStock, alert)
		}
	}
	sortAlerts(s.LowStock)
	sortAlerts(s.OutOfStock)
	return s, nil
}

// Subject asunto del correo del resumen.
func Subject(s *dto.DailySummaryDTO) string {
	return "Resumen del día " + s.Date
}

// Text cuerpo en texto plano.
func Text(s *dto.DailySummaryDTO, lowStock int) string {
	var b strings.Builder
	label := s.Date
	if d, err := time.Parse("2006-01-02", s.Date); err == nil {
		label = analytics.DayLabel(d)
	}
	fmt.Fprintf(&b, "Resumen del día %s\n\n", label)
	fmt.Fprintf(&b, "Ventas: %d (%d unidades)\n", s.SalesCount, s.UnitsSold)
	fmt.Fprintf(&b, "Total vendido: %s\n", money(s.Revenue))
	fmt.Fprintf(&b, "Caja: ingresos %s, egresos %s, balance %s\n",
		money(s.CashIncome), money(s.CashExpense), money(s.CashBalance))
	fmt.Fprintf(&b, "  Efectivo: %s\n", money(s.ByPayment.Cash))
	fmt.Fprintf(&b, "  Tarjeta: %s\n", money(s.ByPayment.Card))
	fmt.Fprintf(&b, "Valor del inventario: %s\n", money(s.InventoryValue))

	fmt.Fprintf(&b, "\nStock bajo (hasta %d unidades):\n", lowStock)
	if len(s.LowStock) == 0 {
		b.WriteString("  (ninguno)\n")
	}
	for _, a := range s.LowStock {
		fmt.Fprintf(&b, "  - %s: %d\n", a.Name, a.Stock)
	}
	b.WriteString("\nAgotados:\n")
	if len(s.OutOfStock) == 0 {
		b.WriteString("  (ninguno)\n")
	}
	for _, a := range s.OutOfStock {
		fmt.Fprintf(&b, "  - %s\n", a.Name)
	}
	return b.String()
}

// MailtoURL enlace mailto: con asunto y cuerpo, para abrir el cliente de correo del usuario.
func MailtoURL(s *dto.DailySummaryDTO, to string, lowStock int) string {
	q := "subject=" + mailtoEscape(Subject(s)) + "&body=" + mailtoEscape(Text(s, lowStock))
	return "mailto:" + url.PathEscape(to) + "?" + q
}

// LowStock umbral configurado.
func (uc *UseCase) LowStock() int { return uc.lowStock }

// Text resumen del día en texto plano.
func (uc *UseCase) Text(ctx context.Context, date time.Time) (string, error) {
	s, err := uc.Build(ctx, date)
	if err != nil {
		return "", err
	}
	return Text(s, uc.lowStock), nil
}

// Mailto enlace mailto: del resumen; to vacío usa el destinatario por defecto.
func (uc *UseCase) Mailto(ctx context.Context, date time.Time, to string) (string, error) {
	s, err := uc.Build(ctx, date)
	if err != nil {
		return "", err
	}
	if to == "" {
		to = uc.defaultTo
	}
	return MailtoURL(s, to, uc.lowStock), nil
}

// PDF resumen del día en PDF.
func (uc *UseCase) PDF(ctx context.Context, date time.Time) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("%w: generador PDF", domain.ErrNotConfigured)
	}
	s, err := uc.Build(ctx, date)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RenderSummary(ctx, s)
}

// Send envía el resumen por correo con el PDF adjunto (si hay generador).
func (uc *UseCase) Send(ctx context.Context, date time.Time, to string) error {
	if uc.mailer == nil {
		return fmt.Errorf("%w: SMTP", domain.ErrNotConfigured)
	}
	if to == "" {
		to = uc.defaultTo
	}
	if to == "" {
		return fmt.Errorf("%w: destinatario requerido", domain.ErrInvalidInput)
	}
	s, err := uc.Build(ctx, date)
	if err != nil {
		return err
	}
	msg := Message{To: []string{to}, Subject: Subject(s), Body: Text(s, uc.lowStock)}
	if uc.pdf != nil {
		doc, err := uc.pdf.RenderSummary(ctx, s)
		if err != nil {
			return err
		}
		msg.Attachments = append(msg.Attachments, Attachment{
			Name:        "resumen-" + s.Date + ".pdf",
			ContentType: "application/pdf",
			Data:        doc,
		})
	}
	return uc.mailer.Send(ctx, msg)
}

func sortAlerts(list []dto.StockAlert) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Stock != list[j].Stock {
			return list[i].Stock < list[j].Stock
		}
		return list[i].Name < list[j].Name
	})
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

// mailtoEscape codifica para mailto: (espacios como %20, no "+").
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
