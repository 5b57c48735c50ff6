package ledger

import "context"

// Locker serializa las operaciones del ledger sobre un mismo producto.
// release se llama siempre, haya fallado o no la operación.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// IdempotencyStore reserva claves de idempotencia de RecordSale.
// Reserve devuelve false si la clave ya fue usada.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
