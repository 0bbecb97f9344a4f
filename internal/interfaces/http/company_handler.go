package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/usecase"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company (protegido).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
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
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), Principal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Substring case-insensitive sobre name"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.CompanyFilter{Search: c.Query("search")}
	out, err := h.uc.List(c.Context(), Principal(c), filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Datos completos"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
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
// @Summary      Actualizar empresa parcialmente
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la empresa"
// @Param        body  body  dto.PatchCompanyRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [patch]
func (h *CompanyHandler) Patch(c *fiber.Ctx) error {
	var in dto.PatchCompanyRequest
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
// @Summary      Eliminar empresa
// @Tags         companies
// @Security     Bearer
// @Param        id  path  string  true  "ID de la empresa"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), Principal(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
