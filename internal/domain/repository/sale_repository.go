package repository

import (
	"context"
	"time"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para la tabla ventas.
// Los registros no se actualizan ni se eliminan.
type SaleRepository interface {
	// Create asigna ID (y Date si viene vacía).
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// List ordena por fecha descendente.
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListBetween devuelve los registros con fecha en [from, to], ambos inclusivos.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
}
