package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada de POST /api/sales. payment_method vacío = efectivo.
type RecordSaleRequest struct {
	ProductID     int64           `json:"product_id" validate:"required,gt=0"`
	Quantity      int             `json:"quantity" validate:"required,gt=0,max=2147483647"`
	UnitPrice     decimal.Decimal `json:"unit_price" validate:"gte=0"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=efectivo tarjeta"`
}

// SaleResponse venta o producción, con el nombre del producto resuelto.
type SaleResponse struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
	Date          time.Time       `json:"date"`
	Kind          string          `json:"kind"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// SaleListResponse lista de ventas (fecha descendente).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// RecordSaleResponse resultado de RecordSale.
type RecordSaleResponse struct {
	Sale           SaleResponse         `json:"sale"`
	CashMovement   CashMovementResponse `json:"cash_movement"`
	RemainingStock int                  `json:"remaining_stock"`
}
