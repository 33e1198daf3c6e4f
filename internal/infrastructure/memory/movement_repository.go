package memory

import (
	"sort"
	"time"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/inventory"
)

// MovementRepo implementación del puerto MovementRepository sobre el store en memoria.
type MovementRepo struct {
	s *Store
}

// NewMovementRepository construye el adaptador sobre el store compartido.
func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{s: s}
}

// Create registra el movimiento y aplica el ajuste de existencia en una sola
// sección crítica: no hay ventana entre leer la existencia y escribirla, así
// que dos movimientos concurrentes sobre el mismo repuesto no se pisan.
// Si el repuesto no existe el movimiento queda registrado igual, sin ajuste.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *movement
	r.s.movements[cp.ID] = &cp

	if part, ok := r.s.parts[cp.PartID]; ok {
		part.Quantity = inventory.ClampQuantity(part.Quantity, cp.Delta())
		part.UpdatedAt = time.Now()
	}
	return nil
}

// GetByID obtiene un movimiento unido con su repuesto. nil si el movimiento
// no existe o su repuesto fue eliminado.
func (r *MovementRepo) GetByID(id string) (*entity.MovementWithPart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return r.joinLocked(m), nil
}

// List lista los movimientos con repuesto resoluble, el más antiguo primero.
func (r *MovementRepo) List() ([]*entity.MovementWithPart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.listLocked(func(*entity.Movement) bool { return true }), nil
}

// ListByPart lista los movimientos de un repuesto con repuesto resoluble.
func (r *MovementRepo) ListByPart(partID string) ([]*entity.MovementWithPart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.listLocked(func(m *entity.Movement) bool { return m.PartID == partID }), nil
}

// joinLocked une un movimiento con su repuesto; nil si la referencia no
// resuelve (el join filtra, no falla). Llamar con el lock tomado.
func (r *MovementRepo) joinLocked(m *entity.Movement) *entity.MovementWithPart {
	part, ok := r.s.parts[m.PartID]
	if !ok {
		return nil
	}
	return &entity.MovementWithPart{Movement: *m, Part: *part}
}

func (r *MovementRepo) listLocked(keep func(*entity.Movement) bool) []*entity.MovementWithPart {
	out := make([]*entity.MovementWithPart, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		if !keep(m) {
			continue
		}
		if joined := r.joinLocked(m); joined != nil {
			out = append(out, joined)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
