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

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia vía ventas y producción.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto con su stock inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if !entity.DecimalInRange(in.Price) {
		return nil, fmt.Errorf("%w: precio fuera de rango", domain.ErrInvalidInput)
	}
	if in.Stock < 0 || in.Stock > entity.MaxStock {
		return nil, fmt.Errorf("%w: el stock inicial debe estar entre 0 y %d", domain.ErrInvalidInput, entity.MaxStock)
	}
	product := &entity.Product{
		Name:       name,
		Category:   strings.TrimSpace(in.Category),
		Price:      in.Price,
		Stock:      in.Stock,
		Image:      in.Image,
		Code:       strings.TrimSpace(in.Code),
		Size:       strings.TrimSpace(in.Size),
		Collection: strings.TrimSpace(in.Collection),
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista los productos del más reciente al más antiguo.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza los datos descriptivos. No permite modificar Stock.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		if !entity.DecimalInRange(*in.Price) {
			return nil, fmt.Errorf("%w: precio fuera de rango", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Code != nil {
		product.Code = strings.TrimSpace(*in.Code)
	}
	if in.Size != nil {
		product.Size = strings.TrimSpace(*in.Size)
	}
	if in.Collection != nil {
		product.Collection = strings.TrimSpace(*in.Collection)
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete elimina un producto. Sus ventas y movimientos de caja se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// DeleteAll elimina todos los productos y devuelve cuántos se borraron.
func (uc *ProductUseCase) DeleteAll(ctx context.Context) (int, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	for i, p := range list {
		if err := uc.repo.Delete(ctx, p.ID); err != nil {
			return i, err
		}
	}
	return len(list), nil
}

func (uc *ProductUseCase) get(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		Stock:          p.Stock,
		Image:          p.Image,
		Code:           p.Code,
		Size:           p.Size,
		Collection:     p.Collection,
		InventoryValue: p.InventoryValue(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
