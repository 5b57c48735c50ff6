package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/store"
)

// StatusHandler estado del almacenamiento.
type StatusHandler struct {
	store *store.Store
}

// NewStatusHandler construye el handler.
func NewStatusHandler(s *store.Store) *StatusHandler {
	return &StatusHandler{store: s}
}

// Get godoc
// @Summary      Modo de almacenamiento y conectividad remota
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/status [get]
func (h *StatusHandler) Get(c *fiber.Ctx) error {
	st := h.store.Status(c.UserContext())
	return c.JSON(dto.StatusResponse{
		Mode:             st.Mode,
		RemoteConfigured: st.RemoteConfigured,
		RemoteReachable:  st.RemoteReachable,
		RemoteError:      st.RemoteError,
	})
}
