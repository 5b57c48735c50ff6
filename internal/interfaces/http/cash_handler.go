package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/application/usecase"
)

// CashHandler libro de caja.
type CashHandler struct {
	uc *usecase.CashUseCase
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *usecase.CashUseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// Create godoc
// @Summary      Movimiento manual de caja
// @Tags         cash
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.CashMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash [post]
func (h *CashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashMovementRequest
	if e := bindAndValidate(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de caja
// @Tags         cash
// @Produce      json
// @Param        fecha  query  string  false  "Día YYYY-MM-DD"
// @Success      200    {object}  dto.CashListResponse
// @Router       /api/cash [get]
func (h *CashHandler) List(c *fiber.Ctx) error {
	date, e := queryDate(c, "fecha")
	if e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.List(c.UserContext(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento de caja por ID
// @Tags         cash
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.CashMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash/{id} [get]
func (h *CashHandler) GetByID(c *fiber.Ctx) error {
	id, e := paramID(c)
	if e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Balance de caja (total, efectivo, tarjeta)
// @Tags         cash
// @Produce      json
// @Param        fecha  query  string  false  "Día YYYY-MM-DD"
// @Success      200    {object}  dto.CashBalanceResponse
// @Router       /api/cash/balance [get]
func (h *CashHandler) Balance(c *fiber.Ctx) error {
	date, e := queryDate(c, "fecha")
	if e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.Balance(c.UserContext(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
