package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashMovementRequest movimiento manual de caja (gasto, aporte, retiro).
type CreateCashMovementRequest struct {
	Kind          string          `json:"kind" validate:"required,oneof=ingreso egreso"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	Description   string          `json:"description" validate:"required,max=300"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=efectivo tarjeta"`
}

// CashMovementResponse salida de un movimiento.
type CashMovementResponse struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"date"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	SaleID        *int64          `json:"sale_id,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// CashListResponse lista de movimientos (fecha descendente).
type CashListResponse struct {
	Items []CashMovementResponse `json:"items"`
	Total int                    `json:"total"`
}

// CashBalanceResponse balances de caja. Date solo viene cuando se pidió un día.
type CashBalanceResponse struct {
	Date  string          `json:"date,omitempty"`
	Total decimal.Decimal `json:"total"`
	Cash  decimal.Decimal `json:"cash"`
	Card  decimal.Decimal `json:"card"`
}
