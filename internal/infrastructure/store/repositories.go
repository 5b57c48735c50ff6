package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*Products)(nil)
	_ repository.SaleRepository    = (*Sales)(nil)
	_ repository.CashRepository    = (*Cash)(nil)
)

// Products repositorio dual de productos.
type Products struct{ s *Store }

func (p *Products) Create(ctx context.Context, product *entity.Product) error {
	return exec(ctx, p.s, "products.create", func(b repository.Backend) error {
		return b.Products().Create(ctx, product)
	})
}

func (p *Products) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return call(ctx, p.s, "products.get", func(b repository.Backend) (*entity.Product, error) {
		return b.Products().GetByID(ctx, id)
	})
}

func (p *Products) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return call(ctx, p.s, "products.get_for_update", func(b repository.Backend) (*entity.Product, error) {
		return b.Products().GetForUpdate(ctx, id)
	})
}

func (p *Products) List(ctx context.Context) ([]*entity.Product, error) {
	return call(ctx, p.s, "products.list", func(b repository.Backend) ([]*entity.Product, error) {
		return b.Products().List(ctx)
	})
}

func (p *Products) Update(ctx context.Context, product *entity.Product) error {
	return exec(ctx, p.s, "products.update", func(b repository.Backend) error {
		return b.Products().Update(ctx, product)
	})
}

func (p *Products) UpdateStock(ctx context.Context, id int64, stock int) error {
	return exec(ctx, p.s, "products.update_stock", func(b repository.Backend) error {
		return b.Products().UpdateStock(ctx, id, stock)
	})
}

func (p *Products) Delete(ctx context.Context, id int64) error {
	return exec(ctx, p.s, "products.delete", func(b repository.Backend) error {
		return b.Products().Delete(ctx, id)
	})
}

// Sales repositorio dual de ventas y producciones.
type Sales struct{ s *Store }

func (r *Sales) Create(ctx context.Context, sale *entity.Sale) error {
	return exec(ctx, r.s, "sales.create", func(b repository.Backend) error {
		return b.Sales().Create(ctx, sale)
	})
}

func (r *Sales) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	return call(ctx, r.s, "sales.get", func(b repository.Backend) (*entity.Sale, error) {
		return b.Sales().GetByID(ctx, id)
	})
}

func (r *Sales) List(ctx context.Context) ([]*entity.Sale, error) {
	return call(ctx, r.s, "sales.list", func(b repository.Backend) ([]*entity.Sale, error) {
		return b.Sales().List(ctx)
	})
}

func (r *Sales) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	return call(ctx, r.s, "sales.list_between", func(b repository.Backend) ([]*entity.Sale, error) {
		return b.Sales().ListBetween(ctx, from, to)
	})
}

// ListByDate registros del día calendario de d (zona horaria de d).
func (r *Sales) ListByDate(ctx context.Context, d time.Time) ([]*entity.Sale, error) {
	from, to := entity.DayRange(d)
	return r.ListBetween(ctx, from, to)
}

// Cash repositorio dual del libro de caja.
type Cash struct{ s *Store }

func (r *Cash) Create(ctx context.Context, m *entity.CashMovement) error {
	return exec(ctx, r.s, "cash.create", func(b repository.Backend) error {
		return b.Cash().Create(ctx, m)
	})
}

func (r *Cash) GetByID(ctx context.Context, id int64) (*entity.CashMovement, error) {
	return call(ctx, r.s, "cash.get", func(b repository.Backend) (*entity.CashMovement, error) {
		return b.Cash().GetByID(ctx, id)
	})
}

func (r *Cash) List(ctx context.Context) ([]*entity.CashMovement, error) {
	return call(ctx, r.s, "cash.list", func(b repository.Backend) ([]*entity.CashMovement, error) {
		return b.Cash().List(ctx)
	})
}

func (r *Cash) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.CashMovement, error) {
	return call(ctx, r.s, "cash.list_between", func(b repository.Backend) ([]*entity.CashMovement, error) {
		return b.Cash().ListBetween(ctx, from, to)
	})
}

// ListByDate movimientos del día calendario de d.
func (r *Cash) ListByDate(ctx context.Context, d time.Time) ([]*entity.CashMovement, error) {
	from, to := entity.DayRange(d)
	return r.ListBetween(ctx, from, to)
}

// Balance ingresos menos egresos de todo el libro.
func (r *Cash) Balance(ctx context.Context) (decimal.Decimal, error) {
	movs, err := r.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return entity.Balance(movs), nil
}

// BalanceByDate balance del día calendario de d.
func (r *Cash) BalanceByDate(ctx context.Context, d time.Time) (decimal.Decimal, error) {
	movs, err := r.ListByDate(ctx, d)
	if err != nil {
		return decimal.Zero, err
	}
	return entity.Balance(movs), nil
}
