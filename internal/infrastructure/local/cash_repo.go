package local

import (
	"context"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

// CashRepo implementa repository.CashRepository sobre Badger.
type CashRepo struct {
	q querier
	t table
}

func (r *CashRepo) Create(ctx context.Context, m *entity.CashMovement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := r.t.nextID()
	if err != nil {
		return err
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	m.ID = id
	return r.q.update(func(txn *badger.Txn) error {
		return r.t.put(txn, id, record.FromCash(m))
	})
}

func (r *CashRepo) GetByID(ctx context.Context, id int64) (*entity.CashMovement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.CashMovement
	err := r.q.view(func(txn *badger.Txn) error {
		row, err := r.t.get(txn, id)
		if err != nil || row == nil {
			return err
		}
		out = record.ToCash(row)
		out.ID = id
		return nil
	})
	return out, err
}

func (r *CashRepo) List(ctx context.Context) ([]*entity.CashMovement, error) {
	return r.collect(ctx, func(*entity.CashMovement) bool { return true })
}

func (r *CashRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.CashMovement, error) {
	return r.collect(ctx, func(m *entity.CashMovement) bool { return entity.InRange(m.Date, from, to) })
}

func (r *CashRepo) collect(ctx context.Context, keep func(*entity.CashMovement) bool) ([]*entity.CashMovement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var list []*entity.CashMovement
	err := r.q.view(func(txn *badger.Txn) error {
		return r.t.scan(txn, func(row map[string]any) error {
			if m := record.ToCash(row); keep(m) {
				list = append(list, m)
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
