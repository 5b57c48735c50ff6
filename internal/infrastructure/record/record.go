// Package record traduce entidades a registros genéricos (map con claves
// camelCase) y de vuelta. Ambos backends persisten y leen a través de este
// código, así el resultado tiene la misma forma venga de donde venga.
package record

import (
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

// Nombres de tabla, compartidos por el backend remoto y el local.
const (
	TableProducts = "productos"
	TableSales    = "ventas"
	TableCash     = "caja"
)

// FromProduct construye el registro de un producto. El id solo se incluye si ya fue asignado.
func FromProduct(p *entity.Product) map[string]any {
	m := map[string]any{
		"nombre":    p.Name,
		"categoria": p.Category,
		"precio":    p.Price,
		"stock":     p.Stock,
		"imagen":    p.Image,
		"codigo":    p.Code,
		"tamano":    p.Size,
		"coleccion": p.Collection,
		"createdAt": p.CreatedAt,
	}
	if p.ID > 0 {
		m["id"] = p.ID
	}
	if p.UpdatedAt != nil {
		m["updatedAt"] = *p.UpdatedAt
	}
	return m
}

// ToProduct decodifica un registro con conversión permisiva de tipos.
func ToProduct(m map[string]any) *entity.Product {
	return &entity.Product{
		ID:         entity.ToInt64(m["id"]),
		Name:       entity.ToString(m["nombre"]),
		Category:   entity.ToString(m["categoria"]),
		Price:      entity.ToDecimal(m["precio"]),
		Stock:      entity.ToInt(m["stock"]),
		Image:      entity.ToString(m["imagen"]),
		Code:       entity.ToString(m["codigo"]),
		Size:       entity.ToString(m["tamano"]),
		Collection: entity.ToString(m["coleccion"]),
		CreatedAt:  entity.ToTime(m["createdAt"]),
		UpdatedAt:  entity.ToOptionalTime(m["updatedAt"]),
	}
}

// FromSale construye el registro de una venta o producción.
func FromSale(s *entity.Sale) map[string]any {
	m := map[string]any{
		"productoId":  s.ProductID,
		"cantidad":    s.Quantity,
		"precioVenta": s.UnitPrice,
		"fecha":       s.Date,
		"tipo":        s.Kind,
	}
	if s.PaymentMethod != "" {
		m["metodoPago"] = s.PaymentMethod
	}
	if s.ID > 0 {
		m["id"] = s.ID
	}
	return m
}

// ToSale decodifica un registro de la tabla ventas.
func ToSale(m map[string]any) *entity.Sale {
	return &entity.Sale{
		ID:            entity.ToInt64(m["id"]),
		ProductID:     entity.ToInt64(m["productoId"]),
		Quantity:      entity.ToInt(m["cantidad"]),
		UnitPrice:     entity.ToDecimal(m["precioVenta"]),
		Date:          entity.ToTime(m["fecha"]),
		Kind:          entity.ToString(m["tipo"]),
		PaymentMethod: entity.ToString(m["metodoPago"]),
	}
}

// FromCash construye el registro de un movimiento de caja.
func FromCash(c *entity.CashMovement) map[string]any {
	m := map[string]any{
		"fecha":       c.Date,
		"tipo":        c.Kind,
		"monto":       c.Amount,
		"descripcion": c.Description,
	}
	if c.SaleID != nil {
		m["ventaId"] = *c.SaleID
	}
	if c.PaymentMethod != "" {
		m["metodoPago"] = c.PaymentMethod
	}
	if c.ID > 0 {
		m["id"] = c.ID
	}
	return m
}

// ToCash decodifica un registro de la tabla caja.
func ToCash(m map[string]any) *entity.CashMovement {
	return &entity.CashMovement{
		ID:            entity.ToInt64(m["id"]),
		Date:          entity.ToTime(m["fecha"]),
		Kind:          entity.ToString(m["tipo"]),
		Amount:        entity.ToDecimal(m["monto"]),
		Description:   entity.ToString(m["descripcion"]),
		SaleID:        entity.ToOptionalID(m["ventaId"]),
		PaymentMethod: entity.ToString(m["metodoPago"]),
	}
}
