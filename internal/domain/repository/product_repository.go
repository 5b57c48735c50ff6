package repository

import (
	"context"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	// Create asigna ID y CreatedAt.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate lee el producto reservándolo hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// List devuelve los productos del más reciente al más antiguo.
	List(ctx context.Context) ([]*entity.Product, error)
	// Update modifica los datos descriptivos; no toca el stock.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock fija el stock; solo lo usa el ledger.
	UpdateStock(ctx context.Context, id int64, stock int) error
	Delete(ctx context.Context, id int64) error
}
