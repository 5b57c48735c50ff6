package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/application/transfer"
)

// DataHandler importación y exportación del catálogo.
type DataHandler struct {
	uc *transfer.UseCase
}

// NewDataHandler construye el handler.
func NewDataHandler(uc *transfer.UseCase) *DataHandler {
	return &DataHandler{uc: uc}
}

// Import godoc
// @Summary      Importar productos (json, xlsx, csv, xml)
// @Tags         data
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "Archivo"
// @Param        charset  formData  string  false  "utf-8 | latin1 | windows-1252 (solo CSV)"
// @Success      200      {object}  dto.ImportResult
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/data/import [post]
func (h *DataHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo en el campo file"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	res, err := h.uc.Import(c.UserContext(), fh.Filename, f, c.FormValue("charset"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Export godoc
// @Summary      Exportar el catálogo
// @Tags         data
// @Produce      json,xml
// @Param        format  query  string  false  "json | xml"
// @Success      200
// @Router       /api/data/export [get]
func (h *DataHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	name, err := h.uc.Export(c.UserContext(), c.Query("format", transfer.FormatJSON), &buf)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(name)
	return c.Send(buf.Bytes())
}
