package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja. El signo lo da el tipo, nunca el monto.
const (
	CashIncome  = "ingreso"
	CashExpense = "egreso"
)

// CashMovement es una entrada del libro de caja (tabla caja).
type CashMovement struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"fecha"`
	Kind          string          `json:"tipo"`
	Amount        decimal.Decimal `json:"monto"` // magnitud positiva
	Description   string          `json:"descripcion"`
	SaleID        *int64          `json:"ventaId,omitempty"`
	PaymentMethod string          `json:"metodoPago,omitempty"`
}

// Signed devuelve el monto con signo según el tipo.
func (m *CashMovement) Signed() decimal.Decimal {
	if m.Kind == CashIncome {
		return m.Amount
	}
	return m.Amount.Neg()
}

// Balance suma ingresos y resta egresos. El resultado no depende del orden.
func Balance(movs []*CashMovement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		total = total.Add(m.Signed())
	}
	return total
}

// PaymentBalances separa el balance por método de pago. Los movimientos sin
// método (manuales) cuentan como efectivo.
type PaymentBalances struct {
	Cash decimal.Decimal
	Card decimal.Decimal
}

// BalanceByPayment calcula el balance en efectivo y con tarjeta.
func BalanceByPayment(movs []*CashMovement) PaymentBalances {
	out := PaymentBalances{Cash: decimal.Zero, Card: decimal.Zero}
	for _, m := range movs {
		switch m.PaymentMethod {
		case PaymentCard:
			out.Card = out.Card.Add(m.Signed())
		case PaymentCash, "":
			out.Cash = out.Cash.Add(m.Signed())
		}
	}
	return out
}
