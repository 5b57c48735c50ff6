package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

var _ repository.CashRepository = (*CashRepo)(nil)

// CashRepo libro de caja.
type CashRepo struct {
	q Querier
	t Table
}

// NewCashRepository construye el adaptador de caja. Pasar pool o tx.
func NewCashRepository(q Querier) *CashRepo {
	return &CashRepo{q: q, t: Table{Name: record.TableCash}}
}

func (r *CashRepo) Create(ctx context.Context, m *entity.CashMovement) error {
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	row, err := r.t.Insert(ctx, r.q, record.FromCash(m))
	if err != nil {
		return err
	}
	m.ID = entity.ToInt64(row["id"])
	return nil
}

func (r *CashRepo) GetByID(ctx context.Context, id int64) (*entity.CashMovement, error) {
	row, err := r.t.FindOne(ctx, r.q, Select{Eq: map[string]any{"id": id}})
	if err != nil || row == nil {
		return nil, err
	}
	return record.ToCash(row), nil
}

func (r *CashRepo) List(ctx context.Context) ([]*entity.CashMovement, error) {
	return r.find(ctx, Select{OrderKey: "fecha", Desc: true})
}

func (r *CashRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.CashMovement, error) {
	return r.find(ctx, Select{RangeKey: "fecha", From: from, To: to, OrderKey: "fecha", Desc: true})
}

func (r *CashRepo) find(ctx context.Context, sel Select) ([]*entity.CashMovement, error) {
	rows, err := r.t.Find(ctx, r.q, sel)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.CashMovement, len(rows))
	for i, row := range rows {
		list[i] = record.ToCash(row)
	}
	return list, nil
}
