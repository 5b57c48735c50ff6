package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/application/ledger"
	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
)

// DeletedProductName nombre mostrado para ventas cuyo producto ya no existe.
const DeletedProductName = "Producto eliminado"

// SaleUseCase registro y consulta de ventas y producciones.
type SaleUseCase struct {
	ledger   *ledger.Coordinator
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(coord *ledger.Coordinator, sales repository.SaleRepository, products repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{ledger: coord, sales: sales, products: products}
}

// Record registra una venta. idempotencyKey puede ir vacío.
func (uc *SaleUseCase) Record(ctx context.Context, in dto.RecordSaleRequest, idempotencyKey string) (*dto.RecordSaleResponse, error) {
	rec, err := uc.ledger.RecordSale(ctx, ledger.SaleInput{
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		UnitPrice:      in.UnitPrice,
		PaymentMethod:  in.PaymentMethod,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return nil, err
	}
	name := DeletedProductName
	if p, err := uc.products.GetByID(ctx, in.ProductID); err == nil && p != nil {
		name = p.Name
	}
	return &dto.RecordSaleResponse{
		Sale:           toSaleResponse(rec.Sale, name),
		CashMovement:   ToCashMovementResponse(rec.Movement),
		RemainingStock: rec.Stock,
	}, nil
}

// RecordProduction suma unidades producidas al stock del producto.
func (uc *SaleUseCase) RecordProduction(ctx context.Context, productID int64, quantity int) (*dto.SaleResponse, error) {
	rec, err := uc.ledger.RecordProduction(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	name := DeletedProductName
	if p, err := uc.products.GetByID(ctx, productID); err == nil && p != nil {
		name = p.Name
	}
	out := toSaleResponse(rec, name)
	return &out, nil
}

// List lista ventas y producciones (fecha descendente). kind filtra por tipo y
// date, si no es nil, limita al día calendario.
func (uc *SaleUseCase) List(ctx context.Context, kind string, date *time.Time) (*dto.SaleListResponse, error) {
	if kind != "" && kind != entity.SaleKindSale && kind != entity.SaleKindProduction {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, kind)
	}
	var (
		list []*entity.Sale
		err  error
	)
	if date != nil {
		from, to := entity.DayRange(*date)
		list, err = uc.sales.ListBetween(ctx, from, to)
	} else {
		list, err = uc.sales.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		if kind != "" && s.Kind != kind {
			continue
		}
		name, ok := names[s.ProductID]
		if !ok {
			name = DeletedProductName
		}
		items = append(items, toSaleResponse(s, name))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

func toSaleResponse(s *entity.Sale, productName string) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		ProductID:     s.ProductID,
		ProductName:   productName,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		Total:         s.Total(),
		Date:          s.Date,
		Kind:          s.Kind,
		PaymentMethod: s.PaymentMethod,
	}
}
