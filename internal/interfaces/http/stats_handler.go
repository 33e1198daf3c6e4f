package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/partsflow/internal/application/usecase"
)

// StatsHandler maneja GET /api/stats.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get godoc
// @Summary      Agregados del inventario (recalculados en cada llamada)
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.InventoryStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return internalError(c, "calcular estadísticas", err)
	}
	return c.JSON(out)
}
