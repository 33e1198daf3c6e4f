package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo implementación del puerto StatsRepository sobre PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de agregados.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetInventoryStats recalcula los agregados con una consulta por colección.
// El SUM corre sobre NUMERIC, así que el total llega decimal-exacto.
func (r *StatsRepo) GetInventoryStats() (*entity.InventoryStats, error) {
	ctx := context.Background()
	stats := &entity.InventoryStats{TotalValue: decimal.Zero}

	partsQuery := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE quantity <= minimum_stock),
		       COALESCE(SUM(quantity * unit_price), 0)
		FROM parts`
	err := r.q.QueryRow(ctx, partsQuery).Scan(&stats.TotalParts, &stats.LowStockCount, &stats.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("stats parts: %w", err)
	}

	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&stats.ActiveSuppliers); err != nil {
		return nil, fmt.Errorf("stats suppliers: %w", err)
	}
	return stats, nil
}
