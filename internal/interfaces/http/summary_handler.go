package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/application/summary"
)

// SummaryHandler resumen diario.
type SummaryHandler struct {
	uc *summary.UseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *summary.UseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Get godoc
// @Summary      Resumen del día
// @Tags         summary
// @Produce      json,plain,application/pdf
// @Param        fecha   query  string  false  "Día YYYY-MM-DD (hoy por defecto)"
// @Param        format  query  string  false  "json | text | pdf | mailto"
// @Param        to      query  string  false  "Destinatario del enlace mailto"
// @Success      200     {object}  dto.DailySummaryDTO
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /api/summary [get]
func (h *SummaryHandler) Get(c *fiber.Ctx) error {
	day, e := h.day(c)
	if e != nil {
		return badRequest(c, e)
	}
	ctx := c.UserContext()
	switch c.Query("format", "json") {
	case "json":
		out, err := h.uc.Build(ctx, day)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	case "text":
		txt, err := h.uc.Text(ctx, day)
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(txt)
	case "pdf":
		doc, err := h.uc.PDF(ctx, day)
		if err != nil {
			return writeError(c, err)
		}
		c.Attachment("resumen-" + day.Format(dateLayout) + ".pdf")
		return c.Send(doc)
	case "mailto":
		link, err := h.uc.Mailto(ctx, day, c.Query("to"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.MailtoResponse{URL: link})
	}
	return badRequest(c, &dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser json, text, pdf o mailto"})
}

// Send godoc
// @Summary      Enviar el resumen por correo (SMTP)
// @Tags         summary
// @Accept       json
// @Param        body  body  dto.SendSummaryRequest  false  "Día y destinatario"
// @Success      202
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/summary/send [post]
func (h *SummaryHandler) Send(c *fiber.Ctx) error {
	var in dto.SendSummaryRequest
	if len(c.Body()) > 0 {
		if e := bindAndValidate(c, &in); e != nil {
			return badRequest(c, e)
		}
	}
	day := h.uc.Today()
	if in.Date != "" {
		d, err := time.ParseInLocation(dateLayout, in.Date, time.Local)
		if err != nil {
			return badRequest(c, &dto.ErrorResponse{Code: "INVALID_DATE", Message: "date debe tener formato YYYY-MM-DD"})
		}
		day = d
	}
	if err := h.uc.Send(c.UserContext(), day, in.To); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

func (h *SummaryHandler) day(c *fiber.Ctx) (time.Time, *dto.ErrorResponse) {
	d, e := queryDate(c, "fecha")
	if e != nil {
		return time.Time{}, e
	}
	if d == nil {
		return h.uc.Today(), nil
	}
	return *d, nil
}
