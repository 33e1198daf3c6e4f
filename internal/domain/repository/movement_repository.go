package repository

import "github.com/tu-usuario/partsflow/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement (DIP).
//
// Create registra el movimiento y aplica el ajuste de existencia al repuesto
// en una sola mutación atómica: si el repuesto existe, quantity pasa a
// max(0, quantity + delta) y se refresca su updatedAt; si no existe, el
// movimiento queda registrado igual (bitácora append-only) sin efecto lateral.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.MovementWithPart, error)
	List() ([]*entity.MovementWithPart, error)
	ListByPart(partID string) ([]*entity.MovementWithPart, error)
}
