// Package memory implementa los puertos del ledger sobre mapas en memoria.
// Es el backend por defecto: estado con vida del proceso, sin durabilidad.
// Todas las operaciones son mutaciones atómicas bajo un RWMutex del store,
// así que el read-modify-write de existencia por movimientos no puede perder
// actualizaciones entre requests concurrentes.
package memory

import (
	"sync"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/inventory"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

// Verificación de puertos en compilación.
var (
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.PartRepository     = (*PartRepo)(nil)
	_ repository.MovementRepository = (*MovementRepo)(nil)
	_ repository.ReportRepository   = (*ReportRepo)(nil)
	_ repository.StatsRepository    = (*StatsRepo)(nil)
)

// Store es el ledger en memoria: dueño exclusivo de las cuatro colecciones
// más los reportes. Se construye explícitamente y se inyecta (nada de
// singletons): cada test puede levantar instancias aisladas.
type Store struct {
	mu         sync.RWMutex
	suppliers  map[string]*entity.Supplier
	categories map[string]*entity.Category
	parts      map[string]*entity.Part
	movements  map[string]*entity.Movement
	reports    map[string]*entity.Report
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		suppliers:  make(map[string]*entity.Supplier),
		categories: make(map[string]*entity.Category),
		parts:      make(map[string]*entity.Part),
		movements:  make(map[string]*entity.Movement),
		reports:    make(map[string]*entity.Report),
	}
}

// enrich resuelve categoría, proveedor y estado de stock de un repuesto.
// Referencia vacía o colgante -> nil, nunca error. Llamar con el lock tomado.
func (s *Store) enrich(p *entity.Part) *entity.PartWithDetails {
	out := &entity.PartWithDetails{
		Part:        *p,
		StockStatus: inventory.StatusFor(p.Quantity, p.MinimumStock),
	}
	if p.CategoryID != "" {
		if c, ok := s.categories[p.CategoryID]; ok {
			cc := *c
			out.Category = &cc
		}
	}
	if p.SupplierID != "" {
		if sup, ok := s.suppliers[p.SupplierID]; ok {
			ss := *sup
			out.Supplier = &ss
		}
	}
	return out
}
