package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/usecase"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// QueueHandler maneja las peticiones HTTP para el recurso Queue (protegido).
type QueueHandler struct {
	uc *usecase.QueueUseCase
}

// NewQueueHandler construye el handler inyectando el caso de uso.
func NewQueueHandler(uc *usecase.QueueUseCase) *QueueHandler {
	return &QueueHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fila
// @Tags         queues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQueueRequest  true  "Datos de la fila (company = ID de la empresa padre)"
// @Success      201   {object}  dto.QueueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/queues [post]
func (h *QueueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQueueRequest
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
// @Summary      Obtener fila por ID
// @Tags         queues
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la fila"
// @Success      200  {object}  dto.QueueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/queues/{id} [get]
func (h *QueueHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), Principal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar filas
// @Tags         queues
// @Security     Bearer
// @Produce      json
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.QueueListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/queues [get]
func (h *QueueHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var filter repository.QueueFilter
	if companyID := c.Query("company_id"); companyID != "" {
		if _, err := uuid.Parse(companyID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id debe ser un UUID"})
		}
		filter.CompanyID = companyID
	}
	out, err := h.uc.List(c.Context(), Principal(c), filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fila
// @Tags         queues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la fila"
// @Param        body  body  dto.UpdateQueueRequest  true  "Datos completos"
// @Success      200   {object}  dto.QueueResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/queues/{id} [put]
func (h *QueueHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQueueRequest
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
// @Summary      Actualizar fila parcialmente
// @Tags         queues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la fila"
// @Param        body  body  dto.PatchQueueRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.QueueResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/queues/{id} [patch]
func (h *QueueHandler) Patch(c *fiber.Ctx) error {
	var in dto.PatchQueueRequest
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
// @Summary      Eliminar fila
// @Tags         queues
// @Security     Bearer
// @Param        id  path  string  true  "ID de la fila"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/queues/{id} [delete]
func (h *QueueHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), Principal(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
