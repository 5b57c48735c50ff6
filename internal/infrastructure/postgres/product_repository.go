package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
	t Table
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q, t: Table{Name: record.TableProducts}}
}

// Create inserta el producto; el id lo asigna la secuencia de la tabla.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	row, err := r.t.Insert(ctx, r.q, record.FromProduct(p))
	if err != nil {
		return err
	}
	p.ID = entity.ToInt64(row["id"])
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, id, true)
}

func (r *ProductRepo) get(ctx context.Context, id int64, lock bool) (*entity.Product, error) {
	row, err := r.t.FindOne(ctx, r.q, Select{Eq: map[string]any{"id": id}, ForUpdate: lock})
	if err != nil || row == nil {
		return nil, err
	}
	return record.ToProduct(row), nil
}

// List devuelve los productos del más reciente al más antiguo.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.t.Find(ctx, r.q, Select{OrderKey: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Product, len(rows))
	for i, row := range rows {
		list[i] = record.ToProduct(row)
	}
	return list, nil
}

// Update modifica los datos descriptivos; stock y createdAt no se envían.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	now := time.Now()
	p.UpdatedAt = &now
	fields := record.FromProduct(p)
	delete(fields, "stock")
	delete(fields, "createdAt")
	found, err := r.t.Update(ctx, r.q, p.ID, fields)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("producto %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// UpdateStock fija el stock del producto.
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) error {
	found, err := r.t.Update(ctx, r.q, id, map[string]any{"stock": stock, "updatedAt": time.Now()})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina el producto. Ventas y movimientos que lo referencian se conservan.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.t.Delete(ctx, r.q, id)
}
