package local

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

// ProductRepo implementa repository.ProductRepository sobre Badger.
type ProductRepo struct {
	q querier
	t table
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := r.t.nextID()
	if err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.ID = id
	return r.q.update(func(txn *badger.Txn) error {
		return r.t.put(txn, id, record.FromProduct(p))
	})
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.Product
	err := r.q.view(func(txn *badger.Txn) error {
		row, err := r.t.get(txn, id)
		if err != nil || row == nil {
			return err
		}
		out = record.ToProduct(row)
		out.ID = id
		return nil
	})
	return out, err
}

// GetForUpdate dentro de Run la lectura queda registrada en la transacción:
// si otra transacción escribe el mismo producto antes del commit, el commit
// falla con conflicto.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var list []*entity.Product
	err := r.q.view(func(txn *badger.Txn) error {
		return r.t.scan(txn, func(row map[string]any) error {
			list = append(list, record.ToProduct(row))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Update conserva stock y CreatedAt del registro guardado.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.q.update(func(txn *badger.Txn) error {
		row, err := r.t.get(txn, p.ID)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("producto %d: %w", p.ID, domain.ErrNotFound)
		}
		current := record.ToProduct(row)
		now := time.Now()
		p.Stock = current.Stock
		p.CreatedAt = current.CreatedAt
		p.UpdatedAt = &now
		return r.t.put(txn, p.ID, record.FromProduct(p))
	})
}

func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.q.update(func(txn *badger.Txn) error {
		row, err := r.t.get(txn, id)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
		}
		row["stock"] = stock
		row["updatedAt"] = time.Now().Format(time.RFC3339Nano)
		return r.t.put(txn, id, row)
	})
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.q.update(func(txn *badger.Txn) error {
		return r.t.delete(txn, id)
	})
}
