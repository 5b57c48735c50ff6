// Package ledger registra ventas y producciones: los únicos caminos que modifican
// el stock de un producto. Cada operación escribe producto, venta y caja en una
// sola transacción y se serializa por producto.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/internal/domain/entity"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
)

var eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "antorcha_ledger_events_total",
	Help: "Eventos del ledger por tipo y resultado",
}, []string{"event", "result"})

// Coordinator coordina las escrituras de RecordSale y RecordProduction.
type Coordinator struct {
	tx     repository.TxRunner
	locker Locker
	idem   IdempotencyStore
	now    func() time.Time
	log    zerolog.Logger
}

// Option configura el Coordinator.
type Option func(*Coordinator)

// WithIdempotency habilita claves de idempotencia en RecordSale.
func WithIdempotency(s IdempotencyStore) Option {
	return func(c *Coordinator) { c.idem = s }
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithLogger asigna el logger del componente.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// NewCoordinator construye el coordinador sobre un TxRunner (el store dual) y un Locker.
func NewCoordinator(tx repository.TxRunner, locker Locker, opts ...Option) *Coordinator {
	c := &Coordinator{tx: tx, locker: locker, now: time.Now, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SaleInput datos de una venta. PaymentMethod vacío equivale a efectivo.
type SaleInput struct {
	ProductID      int64
	Quantity       int
	UnitPrice      decimal.Decimal
	PaymentMethod  string
	IdempotencyKey string
}

// Receipt resultado de RecordSale.
type Receipt struct {
	Sale     *entity.Sale
	Movement *entity.CashMovement
	// Stock restante del producto tras la venta.
	Stock int
}

// RecordSale descuenta stock, crea la venta y el ingreso en caja por cantidad × precio.
// Falla con ErrNotFound si el producto no existe y con ErrInsufficientStock si no alcanza;
// en ambos casos no se escribe nada.
func (c *Coordinator) RecordSale(ctx context.Context, in SaleInput) (_ *Receipt, err error) {
	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentCash
	}
	switch {
	case in.ProductID <= 0:
		return nil, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	case in.Quantity <= 0:
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que 0", domain.ErrInvalidInput)
	case in.Quantity > entity.MaxStock:
		return nil, fmt.Errorf("%w: la cantidad supera %d", domain.ErrInvalidInput, entity.MaxStock)
	case in.UnitPrice.IsNegative():
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	case !entity.DecimalInRange(in.UnitPrice):
		return nil, fmt.Errorf("%w: precio fuera de rango", domain.ErrInvalidInput)
	case !entity.ValidPaymentMethod(method):
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, method)
	}

	opID := uuid.NewString()
	log := c.log.With().Str("op_id", opID).Int64("product_id", in.ProductID).Logger()
	defer func() { c.count(entity.SaleKindSale, err) }()

	if in.IdempotencyKey != "" && c.idem != nil {
		ok, rerr := c.idem.Reserve(ctx, in.IdempotencyKey)
		if rerr != nil {
			return nil, fmt.Errorf("reservar clave de idempotencia: %w", rerr)
		}
		if !ok {
			return nil, fmt.Errorf("%w: venta ya registrada con esta clave", domain.ErrDuplicate)
		}
		defer func() {
			if err != nil {
				if rerr := c.idem.Release(context.WithoutCancel(ctx), in.IdempotencyKey); rerr != nil {
					log.Warn().Err(rerr).Msg("no se pudo liberar la clave de idempotencia")
				}
			}
		}()
	}

	release, err := c.lock(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := c.now()
	var receipt *Receipt
	err = c.tx.Run(ctx, func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
		cash repository.CashRepository,
	) error {
		product, err := products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
		}
		if product.Stock < in.Quantity {
			return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, product.Stock, in.Quantity)
		}

		sale := &entity.Sale{
			ProductID:     in.ProductID,
			Quantity:      in.Quantity,
			UnitPrice:     in.UnitPrice,
			Date:          now,
			Kind:          entity.SaleKindSale,
			PaymentMethod: method,
		}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		stock := product.Stock - in.Quantity
		if err := products.UpdateStock(ctx, in.ProductID, stock); err != nil {
			return err
		}
		saleID := sale.ID
		mov := &entity.CashMovement{
			Date:          now,
			Kind:          entity.CashIncome,
			Amount:        sale.Total(),
			Description:   fmt.Sprintf("Venta: %s x%d", product.Name, in.Quantity),
			SaleID:        &saleID,
			PaymentMethod: method,
		}
		if err := cash.Create(ctx, mov); err != nil {
			return err
		}
		receipt = &Receipt{Sale: sale, Movement: mov, Stock: stock}
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Int("quantity", in.Quantity).Msg("venta rechazada")
		return nil, err
	}

	log.Info().
		Int64("sale_id", receipt.Sale.ID).
		Int("quantity", in.Quantity).
		Str("total", receipt.Movement.Amount.String()).
		Str("payment_method", method).
		Int("stock", receipt.Stock).
		Msg("venta registrada")
	return receipt, nil
}

// RecordProduction suma quantity al stock y deja un registro de producción con precio 0.
// No genera movimiento de caja.
func (c *Coordinator) RecordProduction(ctx context.Context, productID int64, quantity int) (_ *entity.Sale, err error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if quantity > entity.MaxStock {
		return nil, fmt.Errorf("%w: la cantidad supera %d", domain.ErrInvalidInput, entity.MaxStock)
	}
	defer func() { c.count(entity.SaleKindProduction, err) }()

	release, err := c.lock(ctx, productID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := c.now()
	var record *entity.Sale
	var stock int
	err = c.tx.Run(ctx, func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
		_ repository.CashRepository,
	) error {
		product, err := products.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
		}
		if quantity > entity.MaxStock-product.Stock {
			return fmt.Errorf("%w: stock %d + %d supera %d", domain.ErrInvalidInput, product.Stock, quantity, entity.MaxStock)
		}
		stock = product.Stock + quantity
		if err := products.UpdateStock(ctx, productID, stock); err != nil {
			return err
		}
		record = &entity.Sale{
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: decimal.Zero,
			Date:      now,
			Kind:      entity.SaleKindProduction,
		}
		return sales.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Int64("product_id", productID).
		Int("quantity", quantity).
		Int("stock", stock).
		Msg("producción registrada")
	return record, nil
}

func (c *Coordinator) lock(ctx context.Context, productID int64) (func(), error) {
	if c.locker == nil {
		return func() {}, nil
	}
	release, err := c.locker.Lock(ctx, fmt.Sprintf("producto:%d", productID))
	if err != nil {
		return nil, err
	}
	return release, nil
}

// count event es el tipo del registro (venta, produccion); result es ok o error.
func (c *Coordinator) count(event string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	eventsTotal.WithLabelValues(event, result).Inc()
}
