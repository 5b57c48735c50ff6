package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/application/usecase"
)

// HeaderIdempotencyKey cabecera opcional para reintentos seguros de ventas.
const HeaderIdempotencyKey = "Idempotency-Key"

// SaleHandler ventas y producciones.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar venta (descuenta stock y anota ingreso en caja)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Clave de idempotencia"
// @Param        body  body  dto.RecordSaleRequest  true  "Venta"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if e := bindAndValidate(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.Record(c.UserContext(), in, c.Get(HeaderIdempotencyKey))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas y producciones
// @Tags         sales
// @Produce      json
// @Param        tipo   query  string  false  "venta | produccion"
// @Param        fecha  query  string  false  "Día YYYY-MM-DD"
// @Success      200    {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	date, e := queryDate(c, "fecha")
	if e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.List(c.UserContext(), c.Query("tipo"), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
