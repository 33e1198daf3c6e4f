package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/application/usecase"
)

// ReportHandler maneja las peticiones HTTP para reportes (solo altas y listado).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// List godoc
// @Summary      Listar reportes (más reciente primero)
// @Tags         reports
// @Produce      json
// @Success      200  {array}   dto.ReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, "listar reportes", err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar reporte generado
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "Metadatos del reporte (body libre)"
// @Success      201   {object}  dto.ReportResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return internalError(c, "registrar reporte", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
