package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest entrada para crear un repuesto. Quantity y MinimumStock
// por defecto 0; UnitPrice por defecto 0.00. categoryId/supplierId son
// referencias débiles opcionales.
type CreatePartRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	PartNumber   string          `json:"partNumber" validate:"required,min=1,max=100"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"categoryId"`
	SupplierID   string          `json:"supplierId"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	MinimumStock int             `json:"minimumStock" validate:"min=0"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Location     string          `json:"location"`
}

// UpdatePartRequest entrada parcial: campos nil preservados, presentes
// sobreescriben. updatedAt se refresca siempre, cambie lo que cambie.
type UpdatePartRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	PartNumber   *string          `json:"partNumber" validate:"omitempty,min=1,max=100"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"categoryId"`
	SupplierID   *string          `json:"supplierId"`
	Quantity     *int             `json:"quantity" validate:"omitempty,min=0"`
	MinimumStock *int             `json:"minimumStock" validate:"omitempty,min=0"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Location     *string          `json:"location"`
}

// PartResponse salida de un repuesto (sin joins).
type PartResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	PartNumber   string          `json:"partNumber"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"categoryId"`
	SupplierID   string          `json:"supplierId"`
	Quantity     int             `json:"quantity"`
	MinimumStock int             `json:"minimumStock"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Location     string          `json:"location"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// PartDetailsResponse repuesto enriquecido: categoría y proveedor resueltos
// (omitidos si la referencia está vacía o colgando) más stockStatus derivado.
type PartDetailsResponse struct {
	PartResponse
	Category    *CategoryResponse `json:"category,omitempty"`
	Supplier    *SupplierResponse `json:"supplier,omitempty"`
	StockStatus string            `json:"stockStatus"`
}
