package entity

import "github.com/shopspring/decimal"

// InventoryStats agregados del inventario, calculados frescos en cada lectura.
// TotalValue se acumula con aritmética decimal para evitar deriva de redondeo.
// ActiveSuppliers es el conteo total de proveedores (no hay filtro de actividad).
type InventoryStats struct {
	TotalParts      int
	LowStockCount   int // repuestos con quantity <= minimumStock, incluye los agotados
	TotalValue      decimal.Decimal
	ActiveSuppliers int
}
