package memory

import (
	"sort"

	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/inventory"
)

// PartRepo implementación del puerto PartRepository sobre el store en memoria.
// Las lecturas enriquecen con categoría/proveedor resueltos al momento y el
// estado de stock recalculado (nunca cacheado).
type PartRepo struct {
	s *Store
}

// NewPartRepository construye el adaptador sobre el store compartido.
func NewPartRepository(s *Store) *PartRepo {
	return &PartRepo{s: s}
}

// Create persiste un repuesto nuevo.
func (r *PartRepo) Create(part *entity.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *part
	r.s.parts[cp.ID] = &cp
	return nil
}

// GetByID obtiene un repuesto enriquecido. nil si no existe.
func (r *PartRepo) GetByID(id string) (*entity.PartWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.parts[id]
	if !ok {
		return nil, nil
	}
	return r.s.enrich(p), nil
}

// GetByPartNumber obtiene un repuesto enriquecido por número de parte exacto.
func (r *PartRepo) GetByPartNumber(partNumber string) (*entity.PartWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.parts {
		if p.PartNumber == partNumber {
			return r.s.enrich(p), nil
		}
	}
	return nil, nil
}

// List lista todos los repuestos enriquecidos.
func (r *PartRepo) List() ([]*entity.PartWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.listLocked(func(*entity.Part) bool { return true }), nil
}

// Search filtra por subcadena case-insensitive en name, partNumber o description.
func (r *PartRepo) Search(query string) ([]*entity.PartWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.listLocked(func(p *entity.Part) bool {
		return inventory.MatchesSearch(p, query)
	}), nil
}

// ListLowStock filtra quantity <= minimumStock (los agotados califican siempre).
func (r *PartRepo) ListLowStock() ([]*entity.PartWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.listLocked(inventory.IsLowStock), nil
}

// listLocked aplica el predicado y enriquece. Llamar con el lock tomado.
func (r *PartRepo) listLocked(keep func(*entity.Part) bool) []*entity.PartWithDetails {
	out := make([]*entity.PartWithDetails, 0, len(r.s.parts))
	for _, p := range r.s.parts {
		if keep(p) {
			out = append(out, r.s.enrich(p))
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

// Update sobreescribe un repuesto existente.
func (r *PartRepo) Update(part *entity.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parts[part.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *part
	r.s.parts[cp.ID] = &cp
	return nil
}

// Delete elimina un repuesto. Sus movimientos quedan en la bitácora pero
// dejan de resolver en los listados unidos.
func (r *PartRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.parts, id)
	return nil
}
