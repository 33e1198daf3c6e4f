package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto (SKU) con existencia y umbral de reposición.
// CategoryID y SupplierID son referencias débiles: pueden quedar colgando si
// la categoría o el proveedor se elimina; la resolución en lectura las trata
// como ausentes, nunca como error. Cadena vacía = sin referencia.
type Part struct {
	ID           string
	Name         string
	PartNumber   string // único en toda la colección
	Description  string
	CategoryID   string
	SupplierID   string
	Quantity     int // existencia actual, nunca negativa
	MinimumStock int // umbral de stock bajo
	UnitPrice    decimal.Decimal
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time // se refresca en toda mutación, incluida la aplicada por movimientos
}

// Estados derivados de existencia (calculados siempre en lectura, nunca cacheados).
const (
	StockStatusIn  = "in-stock"
	StockStatusLow = "low-stock"
	StockStatusOut = "out-of-stock"
)

// PartWithDetails es un Part enriquecido en lectura con su categoría y proveedor
// resueltos (nil si la referencia está vacía o colgando) y el estado de stock.
type PartWithDetails struct {
	Part
	Category    *Category
	Supplier    *Supplier
	StockStatus string
}
