package repository

import (
	"context"
	"time"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
)

// CashRepository define el puerto de persistencia para el libro de caja.
type CashRepository interface {
	// Create asigna ID (y Date si viene vacía).
	Create(ctx context.Context, movement *entity.CashMovement) error
	// GetByID devuelve nil, nil si el movimiento no existe.
	GetByID(ctx context.Context, id int64) (*entity.CashMovement, error)
	// List ordena por fecha descendente.
	List(ctx context.Context) ([]*entity.CashMovement, error)
	// ListBetween devuelve los movimientos con fecha en [from, to], ambos inclusivos.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.CashMovement, error)
}
