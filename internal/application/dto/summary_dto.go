package dto

import "github.com/shopspring/decimal"

// DailySummaryDTO resumen del día.
type DailySummaryDTO struct {
	Date           string           `json:"date"` // YYYY-MM-DD
	SalesCount     int              `json:"sales_count"`
	UnitsSold      int              `json:"units_sold"`
	Revenue        decimal.Decimal  `json:"revenue"`
	CashIncome     decimal.Decimal  `json:"cash_income"`
	CashExpense    decimal.Decimal  `json:"cash_expense"`
	CashBalance    decimal.Decimal  `json:"cash_balance"`
	ByPayment      PaymentBreakdown `json:"by_payment"`
	InventoryValue decimal.Decimal  `json:"inventory_value"`
	LowStock       []StockAlert     `json:"low_stock"`
	OutOfStock     []StockAlert     `json:"out_of_stock"`
}

// PaymentBreakdown balance del día por método de pago.
type PaymentBreakdown struct {
	Cash decimal.Decimal `json:"cash"`
	Card decimal.Decimal `json:"card"`
}

// StockAlert producto con stock bajo o agotado.
type StockAlert struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// SendSummaryRequest entrada de POST /api/summary/send.
type SendSummaryRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" validate:"omitempty,email"`
}

// MailtoResponse enlace mailto: del resumen.
type MailtoResponse struct {
	URL string `json:"url"`
}
