package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/application/usecase"
	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/pkg/validate"
)

// MovementHandler maneja las peticiones HTTP para movimientos de inventario.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos (unidos con su repuesto)
// @Tags         movements
// @Produce      json
// @Success      200  {array}   dto.MovementWithPartResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, "listar movimientos", err)
	}
	return c.JSON(out)
}

// ListByPart godoc
// @Summary      Listar movimientos de un repuesto
// @Tags         movements
// @Produce      json
// @Param        partId  path  string  true  "ID del repuesto"
// @Success      200  {array}   dto.MovementWithPartResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements/part/{partId} [get]
func (h *MovementHandler) ListByPart(c *fiber.Ctx) error {
	out, err := h.uc.ListByPart(c.Params("partId"))
	if err != nil {
		return internalError(c, "listar movimientos del repuesto", err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementWithPartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, "obtener movimiento", err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento de inventario
// @Description  Persiste el movimiento y ajusta la existencia del repuesto
//
//	(entrada suma, salida resta con piso en cero). La respuesta es el
//	movimiento creado: re-consultar el repuesto para ver la existencia nueva.
//
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "partId, type (in|out), quantity > 0, reason opcional"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fieldErrs := validate.Struct(in); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: fieldErrs})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return internalError(c, "registrar movimiento", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
