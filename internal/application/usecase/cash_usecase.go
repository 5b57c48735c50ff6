package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
)

// CashUseCase libro de caja: movimientos manuales, consultas y balances.
type CashUseCase struct {
	repo repository.CashRepository
	now  func() time.Time
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(repo repository.CashRepository) *CashUseCase {
	return &CashUseCase{repo: repo, now: time.Now}
}

// Create registra un ingreso o egreso manual (sin venta asociada).
func (uc *CashUseCase) Create(ctx context.Context, in dto.CreateCashMovementRequest) (*dto.CashMovementResponse, error) {
	if in.Kind != entity.CashIncome && in.Kind != entity.CashExpense {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Kind)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if !entity.DecimalInRange(in.Amount) {
		return nil, fmt.Errorf("%w: monto fuera de rango", domain.ErrInvalidInput)
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, fmt.Errorf("%w: la descripción es obligatoria", domain.ErrInvalidInput)
	}
	if in.PaymentMethod != "" && !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	mov := &entity.CashMovement{
		Date:          uc.now(),
		Kind:          in.Kind,
		Amount:        in.Amount,
		Description:   desc,
		PaymentMethod: in.PaymentMethod,
	}
	if err := uc.repo.Create(ctx, mov); err != nil {
		return nil, err
	}
	out := ToCashMovementResponse(mov)
	return &out, nil
}

// GetByID obtiene un movimiento por ID.
func (uc *CashUseCase) GetByID(ctx context.Context, id int64) (*dto.CashMovementResponse, error) {
	mov, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, fmt.Errorf("movimiento %d: %w", id, domain.ErrNotFound)
	}
	out := ToCashMovementResponse(mov)
	return &out, nil
}

// List movimientos (fecha descendente); date limita al día calendario.
func (uc *CashUseCase) List(ctx context.Context, date *time.Time) (*dto.CashListResponse, error) {
	movs, err := uc.movements(ctx, date)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashMovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, ToCashMovementResponse(m))
	}
	return &dto.CashListResponse{Items: items, Total: len(items)}, nil
}

// Balance total y por método de pago; date limita al día calendario.
func (uc *CashUseCase) Balance(ctx context.Context, date *time.Time) (*dto.CashBalanceResponse, error) {
	movs, err := uc.movements(ctx, date)
	if err != nil {
		return nil, err
	}
	byPayment := entity.BalanceByPayment(movs)
	out := &dto.CashBalanceResponse{
		Total: entity.Balance(movs),
		Cash:  byPayment.Cash,
		Card:  byPayment.Card,
	}
	if date != nil {
		out.Date = date.Format("2006-01-02")
	}
	return out, nil
}

func (uc *CashUseCase) movements(ctx context.Context, date *time.Time) ([]*entity.CashMovement, error) {
	if date == nil {
		return uc.repo.List(ctx)
	}
	from, to := entity.DayRange(*date)
	return uc.repo.ListBetween(ctx, from, to)
}

// ToCashMovementResponse convierte la entidad al DTO de salida.
func ToCashMovementResponse(m *entity.CashMovement) dto.CashMovementResponse {
	return dto.CashMovementResponse{
		ID:            m.ID,
		Date:          m.Date,
		Kind:          m.Kind,
		Amount:        m.Amount,
		Description:   m.Description,
		SaleID:        m.SaleID,
		PaymentMethod: m.PaymentMethod,
	}
}
