package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/application/usecase"
	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/pkg/validate"
)

// PartHandler maneja las peticiones HTTP para repuestos.
type PartHandler struct {
	uc *usecase.PartUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *usecase.PartUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// List godoc
// @Summary      Listar repuestos (con búsqueda opcional)
// @Tags         parts
// @Produce      json
// @Param        search  query  string  false  "Subcadena sobre name, partNumber y description"
// @Success      200  {array}   dto.PartDetailsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("search"))
	if err != nil {
		return internalError(c, "listar repuestos", err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Listar repuestos con stock bajo (quantity <= minimumStock)
// @Tags         parts
// @Produce      json
// @Success      200  {array}   dto.PartDetailsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/parts/low-stock [get]
func (h *PartHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock()
	if err != nil {
		return internalError(c, "listar stock bajo", err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener repuesto por ID
// @Tags         parts
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.PartDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, "obtener repuesto", err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	}
	return c.JSON(out)
}

// GetByPartNumber godoc
// @Summary      Obtener repuesto por número de parte
// @Tags         parts
// @Produce      json
// @Param        partNumber  path  string  true  "Número de parte"
// @Success      200  {object}  dto.PartDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/number/{partNumber} [get]
func (h *PartHandler) GetByPartNumber(c *fiber.Ctx) error {
	out, err := h.uc.GetByPartNumber(c.Params("partNumber"))
	if err != nil {
		return internalError(c, "obtener repuesto por número", err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear repuesto
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fieldErrs := validate.Struct(in); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: fieldErrs})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "partNumber ya existe"})
		}
		return internalError(c, "crear repuesto", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar repuesto (merge parcial)
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del repuesto"
// @Param        body  body  dto.UpdatePartRequest  true  "Campos a sobreescribir"
// @Success      200   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fieldErrs := validate.Struct(in); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: fieldErrs})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "partNumber ya existe"})
		}
		return internalError(c, "actualizar repuesto", err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar repuesto
// @Tags         parts
// @Param        id  path  string  true  "ID del repuesto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
		}
		return internalError(c, "eliminar repuesto", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// internalError registra el detalle y responde un 500 genérico, sin filtrar
// internals al caller.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
