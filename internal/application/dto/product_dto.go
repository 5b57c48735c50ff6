package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock es el stock inicial;
// después solo cambia con ventas y producción.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Category   string          `json:"category" validate:"max=100"`
	Price      decimal.Decimal `json:"price" validate:"gte=0"`
	Stock      int             `json:"stock" validate:"gte=0,max=2147483647"`
	Image      string          `json:"image"`
	Code       string          `json:"code" validate:"max=100"`
	Size       string          `json:"size" validate:"max=100"`
	Collection string          `json:"collection" validate:"max=100"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock).
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category   *string          `json:"category" validate:"omitempty,max=100"`
	Price      *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Image      *string          `json:"image"`
	Code       *string          `json:"code" validate:"omitempty,max=100"`
	Size       *string          `json:"size" validate:"omitempty,max=100"`
	Collection *string          `json:"collection" validate:"omitempty,max=100"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	Image          string          `json:"image,omitempty"`
	Code           string          `json:"code,omitempty"`
	Size           string          `json:"size,omitempty"`
	Collection     string          `json:"collection,omitempty"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductionRequest entrada de POST /api/products/:id/production.
type ProductionRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0,max=2147483647"`
}

// DeleteAllResponse resultado de DELETE /api/products.
type DeleteAllResponse struct {
	Deleted int `json:"deleted"`
}
