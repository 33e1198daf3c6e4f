package usecase

import (
	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

// StatsUseCase expone los agregados del inventario. Cada llamada recalcula
// sobre el estado actual de las colecciones, sin caché.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Get devuelve los agregados frescos del inventario.
func (uc *StatsUseCase) Get() (*dto.InventoryStatsResponse, error) {
	stats, err := uc.repo.GetInventoryStats()
	if err != nil {
		return nil, err
	}
	return &dto.InventoryStatsResponse{
		TotalParts:      stats.TotalParts,
		LowStockCount:   stats.LowStockCount,
		TotalValue:      stats.TotalValue,
		ActiveSuppliers: stats.ActiveSuppliers,
	}, nil
}
