package memory

import (
	"sort"

	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
)

// SupplierRepo implementación del puerto SupplierRepository sobre el store en memoria.
type SupplierRepo struct {
	s *Store
}

// NewSupplierRepository construye el adaptador sobre el store compartido.
func NewSupplierRepository(s *Store) *SupplierRepo {
	return &SupplierRepo{s: s}
}

// Create persiste un proveedor nuevo.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *supplier
	r.s.suppliers[cp.ID] = &cp
	return nil
}

// GetByID obtiene un proveedor. nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *sup
	return &cp, nil
}

// List lista los proveedores ordenados por nombre.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sup := range r.s.suppliers {
		cp := *sup
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update sobreescribe un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[supplier.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *supplier
	r.s.suppliers[cp.ID] = &cp
	return nil
}

// Delete elimina un proveedor. Sin cascada: los repuestos que lo referencian
// quedan con el id colgando y resuelven a ausente en la siguiente lectura.
func (r *SupplierRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.suppliers, id)
	return nil
}
