package local

import (
	"context"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

// SaleRepo implementa repository.SaleRepository sobre Badger.
type SaleRepo struct {
	q querier
	t table
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := r.t.nextID()
	if err != nil {
		return err
	}
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	s.ID = id
	return r.q.update(func(txn *badger.Txn) error {
		return r.t.put(txn, id, record.FromSale(s))
	})
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.Sale
	err := r.q.view(func(txn *badger.Txn) error {
		row, err := r.t.get(txn, id)
		if err != nil || row == nil {
			return err
		}
		out = record.ToSale(row)
		out.ID = id
		return nil
	})
	return out, err
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.collect(ctx, func(*entity.Sale) bool { return true })
}

func (r *SaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	return r.collect(ctx, func(s *entity.Sale) bool { return entity.InRange(s.Date, from, to) })
}

func (r *SaleRepo) collect(ctx context.Context, keep func(*entity.Sale) bool) ([]*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var list []*entity.Sale
	err := r.q.view(func(txn *badger.Txn) error {
		return r.t.scan(txn, func(row map[string]any) error {
			if s := record.ToSale(row); keep(s) {
				list = append(list, s)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date.Equal(list[j].Date) {
			return list[i].ID > list[j].ID
		}
		return list[i].Date.After(list[j].Date)
	})
	return list, nil
}
