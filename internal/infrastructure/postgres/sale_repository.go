package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/record"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo tabla ventas (ventas y producciones).
type SaleRepo struct {
	q Querier
	t Table
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q, t: Table{Name: record.TableSales}}
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	row, err := r.t.Insert(ctx, r.q, record.FromSale(s))
	if err != nil {
		return err
	}
	s.ID = entity.ToInt64(row["id"])
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	row, err := r.t.FindOne(ctx, r.q, Select{Eq: map[string]any{"id": id}})
	if err != nil || row == nil {
		return nil, err
	}
	return record.ToSale(row), nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.find(ctx, Select{OrderKey: "fecha", Desc: true})
}

func (r *SaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	return r.find(ctx, Select{RangeKey: "fecha", From: from, To: to, OrderKey: "fecha", Desc: true})
}

func (r *SaleRepo) find(ctx context.Context, sel Select) ([]*entity.Sale, error) {
	rows, err := r.t.Find(ctx, r.q, sel)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Sale, len(rows))
	for i, row := range rows {
		list[i] = record.ToSale(row)
	}
	return list, nil
}
