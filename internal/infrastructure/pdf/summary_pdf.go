// Package pdf genera el resumen diario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Antorcha de Plata      │  Resumen del día + fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENTAS: cantidad / unidades / total vendido                 │
//	│  CAJA: ingresos / egresos / balance (efectivo y tarjeta)     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: stock bajo | agotados                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/antorcha-inventario/internal/application/analytics"
	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 86, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// SummaryPDF implementa summary.PDFRenderer usando Maroto v2.
type SummaryPDF struct {
	business string
}

// NewSummaryPDF construye el generador. business aparece en el encabezado.
func NewSummaryPDF(business string) *SummaryPDF {
	return &SummaryPDF{business: nonEmpty(business, "Antorcha de Plata")}
}

// RenderSummary genera el PDF y devuelve sus bytes.
func (g *SummaryPDF) RenderSummary(ctx context.Context, s *dto.DailySummaryDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen del día "+s.Date, true).
		WithAuthor(g.business, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitle("VENTAS"))
	m.AddRows(kpiRow(
		kpi{"Ventas", strconv.Itoa(s.SalesCount)},
		kpi{"Unidades", strconv.Itoa(s.UnitsSold)},
		kpi{"Total vendido", money(s.Revenue)},
	))
	m.AddRows(sectionTitle("CAJA"))
	m.AddRows(kpiRow(
		kpi{"Ingresos", money(s.CashIncome)},
		kpi{"Egresos", money(s.CashExpense)},
		kpi{"Balance", money(s.CashBalance)},
	))
	m.AddRows(kpiRow(
		kpi{"Efectivo", money(s.ByPayment.Cash)},
		kpi{"Tarjeta", money(s.ByPayment.Card)},
		kpi{"Valor inventario", money(s.InventoryValue)},
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("STOCK BAJO"))
	m.AddRows(alertRows(s.LowStock, false)...)
	m.AddRows(sectionTitle("AGOTADOS"))
	m.AddRows(alertRows(s.OutOfStock, true)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generado el "+time.Now().Format("02/01/2006 15:04"), props.Text{
			Size: 7, Color: colorGray, Align: align.Right, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar resumen: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *SummaryPDF) headerRow(s *dto.DailySummaryDTO) core.Row {
	label := s.Date
	if d, err := time.Parse("2006-01-02", s.Date); err == nil {
		label = analytics.DayLabel(d)
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.business, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("RESUMEN DEL DÍA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
		}),
	))
}

type kpi struct {
	label string
	value string
}

// kpiRow: tres indicadores en columnas de ancho 4.
func kpiRow(items ...kpi) core.Row {
	cols := make([]core.Col, 0, len(items))
	for _, it := range items {
		cols = append(cols, col.New(4).Add(
			text.New(it.label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(it.value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		))
	}
	return row.New(13).Add(cols...)
}

func alertRows(alerts []dto.StockAlert, out bool) []core.Row {
	if len(alerts) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin productos en esta lista.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
		))}
	}
	rows := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		stock := strconv.Itoa(a.Stock) + " u."
		style := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if out {
			stock = "agotado"
			style.Color = colorAlert
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New("#"+strconv.FormatInt(a.ProductID, 10), props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 2,
			})),
			col.New(7).Add(text.New(a.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(stock, style)),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea con puntos de miles y coma decimal. Ej: 1234567.5 → "$1.234.567,50"
func money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	return sign + "$" + formatThousands(intPart) + "," + frac
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
