package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etiqueta de un registro de la tabla ventas.
const (
	SaleKindSale       = "venta"
	SaleKindProduction = "produccion"
)

// Métodos de pago.
const (
	PaymentCash = "efectivo"
	PaymentCard = "tarjeta"
)

// ValidPaymentMethod indica si m es un método de pago conocido.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard
}

// Sale es un evento de venta o de producción sobre un producto (tabla ventas).
// ProductID es una referencia débil: el producto puede haber sido eliminado.
type Sale struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"productoId"`
	Quantity      int             `json:"cantidad"`
	UnitPrice     decimal.Decimal `json:"precioVenta"` // cero en producción
	Date          time.Time       `json:"fecha"`
	Kind          string          `json:"tipo"`
	PaymentMethod string          `json:"metodoPago,omitempty"`
}

// Total devuelve cantidad × precio unitario.
func (s *Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
