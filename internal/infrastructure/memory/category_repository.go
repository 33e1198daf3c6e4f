package memory

import (
	"sort"

	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
)

// CategoryRepo implementación del puerto CategoryRepository sobre el store en memoria.
type CategoryRepo struct {
	s *Store
}

// NewCategoryRepository construye el adaptador sobre el store compartido.
func NewCategoryRepository(s *Store) *CategoryRepo {
	return &CategoryRepo{s: s}
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *category
	r.s.categories[cp.ID] = &cp
	return nil
}

// GetByID obtiene una categoría. nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// GetByName obtiene una categoría por nombre exacto (para el chequeo de unicidad).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// List lista las categorías ordenadas por nombre.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update sobreescribe una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *category
	r.s.categories[cp.ID] = &cp
	return nil
}

// Delete elimina una categoría. Sin cascada sobre los repuestos que la referencian.
func (r *CategoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}
