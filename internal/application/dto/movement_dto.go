package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento. El tipo solo
// admite "in" u "out": cualquier otro valor se rechaza en la validación, no
// se interpreta silenciosamente como salida.
type CreateMovementRequest struct {
	PartID   string `json:"partId" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=in out"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason"`
}

// MovementResponse salida de un movimiento. El caller debe re-consultar el
// repuesto para observar la existencia ajustada.
type MovementResponse struct {
	ID        string    `json:"id"`
	PartID    string    `json:"partId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// MovementWithPartResponse movimiento unido con su repuesto.
type MovementWithPartResponse struct {
	MovementResponse
	Part PartResponse `json:"part"`
}
