package dto

// CreateSupplierRequest entrada para crear un proveedor. Solo name es obligatorio.
type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
}

// UpdateSupplierRequest entrada parcial: los campos nil se preservan, los
// presentes sobreescriben (shallow merge).
type UpdateSupplierRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Address      *string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
}
