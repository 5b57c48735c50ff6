package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MaxStock tope del stock y de la cantidad de una operación (columna INTEGER del remoto).
const MaxStock = math.MaxInt32

// Product representa un producto del catálogo de la tienda (tabla productos).
// Stock solo cambia vía ledger (venta descuenta, producción suma).
type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"nombre"`
	Category   string          `json:"categoria"`
	Price      decimal.Decimal `json:"precio"` // precio de venta unitario (PVP)
	Stock      int             `json:"stock"`
	Image      string          `json:"imagen,omitempty"`
	Code       string          `json:"codigo,omitempty"`
	Size       string          `json:"tamano,omitempty"`
	Collection string          `json:"coleccion,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty"`
}

// InventoryValue devuelve precio × stock (un stock negativo cuenta como cero).
func (p *Product) InventoryValue() decimal.Decimal {
	if p.Stock <= 0 {
		return decimal.Zero
	}
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
