// Package analytics contiene los indicadores del panel principal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

// ProductLister fuente del catálogo.
type ProductLister interface {
	List(ctx context.Context) ([]*entity.Product, error)
}

// DailySales ventas y producciones de un día calendario.
type DailySales interface {
	ListByDate(ctx context.Context, d time.Time) ([]*entity.Sale, error)
}

// DailyCash balance de caja de un día calendario.
type DailyCash interface {
	BalanceByDate(ctx context.Context, d time.Time) (decimal.Decimal, error)
}

// DashboardUseCase genera los KPIs del panel: catálogo, valor de inventario y
// actividad del día.
type DashboardUseCase struct {
	products ProductLister
	sales    DailySales
	cash     DailyCash
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products ProductLister, sales DailySales, cash DailyCash) *DashboardUseCase {
	return &DashboardUseCase{products: products, sales: sales, cash: cash, now: time.Now}
}

// GetSummary tres lecturas en paralelo:
//  1. catálogo          → totalProductos, totalStock, valorInventario
//  2. ventas de hoy     → ventasHoy (solo tipo venta)
//  3. caja de hoy       → cajaHoy
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	now := uc.now()

	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type salesResult struct {
		list []*entity.Sale
		err  error
	}
	type cashResult struct {
		balance decimal.Decimal
		err     error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)
	cashCh := make(chan cashResult, 1)

	go func() {
		list, err := uc.products.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.sales.ListByDate(ctx, now)
		salesCh <- salesResult{list, err}
	}()
	go func() {
		bal, err := uc.cash.BalanceByDate(ctx, now)
		cashCh <- cashResult{bal, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	cash := <-cashCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", sales.err)
	}
	if cash.err != nil {
		return nil, fmt.Errorf("dashboard: caja de hoy: %w", cash.err)
	}

	out := &dto.DashboardDTO{
		TotalProducts:  len(products.list),
		InventoryValue: decimal.Zero,
		CashToday:      cash.balance,
		DateLabel:      DayLabel(now),
	}
	for _, p := range products.list {
		out.TotalStock += p.Stock
		out.InventoryValue = out.InventoryValue.Add(p.InventoryValue())
	}
	for _, s := range sales.list {
		if s.Kind == entity.SaleKindSale {
			out.SalesToday++
		}
	}
	return out, nil
}

// DayLabel devuelve una etiqueta legible del día, ej: "10 de Junio de 2024".
func DayLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
