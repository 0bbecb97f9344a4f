package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/usecase"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// QueueEntryHandler maneja las peticiones HTTP para el recurso QueueEntry (protegido).
type QueueEntryHandler struct {
	uc *usecase.QueueEntryUseCase
}

// NewQueueEntryHandler construye el handler inyectando el caso de uso.
func NewQueueEntryHandler(uc *usecase.QueueEntryUseCase) *QueueEntryHandler {
	return &QueueEntryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear turno
// @Tags         queue-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQueueEntryRequest  true  "Datos del turno (queue = ID de la fila padre)"
// @Success      201   {object}  dto.QueueEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/queue-entries [post]
func (h *QueueEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQueueEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), Principal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener turno por ID
// @Tags         queue-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del turno"
// @Success      200  {object}  dto.QueueEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/queue-entries/{id} [get]
func (h *QueueEntryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), Principal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar turnos
// @Tags         queue-entries
// @Security     Bearer
// @Produce      json
// @Param        queue_id             query  string  false  "Filtrar por fila"
// @Param        date                 query  string  false  "Fecha de start_waiting (YYYY-MM-DD)"
// @Param        waiting_end_is_null  query  bool    false  "true = aún esperando, false = ya atendidos"
// @Param        limit                query  int     false  "Límite"   default(20)
// @Param        offset               query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.QueueEntryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/queue-entries [get]
func (h *QueueEntryHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var filter repository.QueueEntryFilter
	if queueID := c.Query("queue_id"); queueID != "" {
		if _, err := uuid.Parse(queueID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "queue_id debe ser un UUID"})
		}
		filter.QueueID = queueID
	}
	if date := c.Query("date"); date != "" {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		}
		filter.Date = &d
	}
	if raw := c.Query("waiting_end_is_null"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "waiting_end_is_null debe ser booleano"})
		}
		filter.WaitingEndIsNull = &b
	}
	out, err := h.uc.List(c.Context(), Principal(c), filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar turno
// @Tags         queue-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del turno"
// @Param        body  body  dto.UpdateQueueEntryRequest  true  "Datos completos"
// @Success      200   {object}  dto.QueueEntryResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/queue-entries/{id} [put]
func (h *QueueEntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQueueEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), Principal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar turno parcialmente
// @Tags         queue-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del turno"
// @Param        body  body  dto.PatchQueueEntryRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.QueueEntryResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/queue-entries/{id} [patch]
func (h *QueueEntryHandler) Patch(c *fiber.Ctx) error {
	var in dto.PatchQueueEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Patch(c.Context(), Principal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar turno
// @Tags         queue-entries
// @Security     Bearer
// @Param        id  path  string  true  "ID del turno"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/queue-entries/{id} [delete]
func (h *QueueEntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), Principal(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
