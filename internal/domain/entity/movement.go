package entity

import "time"

// MovementType es el tipo de un movimiento de inventario: entrada o salida.
// Cualquier otro valor se rechaza en la frontera de validación.
type MovementType string

const (
	MovementIn  MovementType = "in"  // entrada de stock
	MovementOut MovementType = "out" // salida de stock
)

// IsValid reporta si el tipo es una de las dos variantes permitidas.
func (t MovementType) IsValid() bool {
	return t == MovementIn || t == MovementOut
}

// Movement es un registro inmutable de cambio de existencia aplicado a un Part.
// Una vez creado nunca se actualiza ni elimina (bitácora append-only).
type Movement struct {
	ID        string
	PartID    string
	Type      MovementType
	Quantity  int // magnitud del cambio, siempre positiva
	Reason    string
	CreatedAt time.Time
}

// Delta devuelve el cambio con signo que el movimiento aplica a la existencia.
func (m *Movement) Delta() int {
	if m.Type == MovementIn {
		return m.Quantity
	}
	return -m.Quantity
}

// MovementWithPart es un Movement unido con su Part en lectura. Los movimientos
// cuyo repuesto fue eliminado se excluyen silenciosamente de los listados.
type MovementWithPart struct {
	Movement
	Part Part
}
