package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
)

const dateLayout = "2006-01-02"

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, *dto.ErrorResponse) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"}
	}
	return id, nil
}

// queryDate lee un día YYYY-MM-DD de la query (hora local); nil si no viene.
func queryDate(c *fiber.Ctx, key string) (*time.Time, *dto.ErrorResponse) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, &dto.ErrorResponse{Code: "INVALID_DATE", Message: key + " debe tener formato YYYY-MM-DD"}
	}
	return &d, nil
}

func badRequest(c *fiber.Ctx, e *dto.ErrorResponse) error {
	return c.Status(fiber.StatusBadRequest).JSON(e)
}
