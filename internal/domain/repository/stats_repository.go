package repository

import "github.com/tu-usuario/partsflow/internal/domain/entity"

// StatsRepository calcula los agregados del inventario sobre el estado actual
// de las colecciones. Sin caché: repuestos y proveedores mutan entre llamadas.
type StatsRepository interface {
	GetInventoryStats() (*entity.InventoryStats, error)
}
