package repository

import "context"

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios
// atados a esa transacción. Si fn devuelve error se hace Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products ProductRepository,
		sales SaleRepository,
		cash CashRepository,
	) error) error
}

// Backend agrupa los repositorios de un almacenamiento físico (remoto o local).
type Backend interface {
	TxRunner
	Name() string
	Products() ProductRepository
	Sales() SaleRepository
	Cash() CashRepository
	// Ping verifica que el almacenamiento responde.
	Ping(ctx context.Context) error
}
