package dto

import "github.com/shopspring/decimal"

// InventoryStatsResponse respuesta de GET /api/stats. totalValue es la suma
// decimal exacta de quantity × unitPrice sobre todos los repuestos.
type InventoryStatsResponse struct {
	TotalParts      int             `json:"totalParts"`
	LowStockCount   int             `json:"lowStockCount"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	ActiveSuppliers int             `json:"activeSuppliers"`
}
