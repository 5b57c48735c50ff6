package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	TotalProducts  int             `json:"total_products"`
	TotalStock     int             `json:"total_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"` // Σ precio × stock
	SalesToday     int             `json:"sales_today"`     // registros tipo venta de hoy
	CashToday      decimal.Decimal `json:"cash_today"`      // balance de caja de hoy
	DateLabel      string          `json:"date_label"`      // ej: "10 de Junio de 2024"
}
