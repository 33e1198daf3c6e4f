package entity

import "time"

// Tipos de reporte generables desde la UI.
const (
	ReportInventory        = "inventory"
	ReportLowStock         = "low-stock"
	ReportMovements        = "movements"
	ReportSupplierAnalysis = "supplier-analysis"
)

// Report es un registro append-only de un reporte generado. Solo metadatos:
// el contenido se produce en la capa de presentación, no aquí.
type Report struct {
	ID        string
	Name      string
	Type      string
	DateRange string // descriptor serializado del rango (JSON opaco con from/to)
	CreatedAt time.Time
}
