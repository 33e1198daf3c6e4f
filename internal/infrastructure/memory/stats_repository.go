package memory

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/inventory"
)

// StatsRepo implementación del puerto StatsRepository sobre el store en memoria.
type StatsRepo struct {
	s *Store
}

// NewStatsRepository construye el adaptador sobre el store compartido.
func NewStatsRepository(s *Store) *StatsRepo {
	return &StatsRepo{s: s}
}

// GetInventoryStats recalcula los agregados sobre el estado actual.
// TotalValue acumula quantity × unitPrice con aritmética decimal exacta.
func (r *StatsRepo) GetInventoryStats() (*entity.InventoryStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &entity.InventoryStats{
		TotalParts:      len(r.s.parts),
		ActiveSuppliers: len(r.s.suppliers),
		TotalValue:      decimal.Zero,
	}
	for _, p := range r.s.parts {
		if inventory.IsLowStock(p) {
			stats.LowStockCount++
		}
		stats.TotalValue = stats.TotalValue.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return stats, nil
}
