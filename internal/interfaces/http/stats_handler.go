package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Turnos-api/internal/application/usecase"
)

// StatsHandler maneja las peticiones HTTP de estadísticas (protegido).
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler inyectando el caso de uso.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// QueueStats godoc
// @Summary      Estadísticas de espera por fila
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QueueStatsListResponse
// @Router       /api/stats/queues [get]
func (h *StatsHandler) QueueStats(c *fiber.Ctx) error {
	out, err := h.uc.QueueStats(c.Context(), Principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
