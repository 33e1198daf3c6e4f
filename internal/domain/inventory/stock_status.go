package inventory

import "github.com/tu-usuario/partsflow/internal/domain/entity"

// StatusFor clasifica la existencia de un repuesto (servicio de dominio).
// Función total de (quantity, minimumStock): agotado si quantity es cero,
// bajo si quantity <= minimumStock, normal en el resto.
func StatusFor(quantity, minimumStock int) string {
	switch {
	case quantity == 0:
		return entity.StockStatusOut
	case quantity <= minimumStock:
		return entity.StockStatusLow
	default:
		return entity.StockStatusIn
	}
}

// IsLowStock reporta si el repuesto califica para la lista de reposición.
// Los agotados califican siempre: 0 <= minimumStock para todo umbral válido.
func IsLowStock(p *entity.Part) bool {
	return p.Quantity <= p.MinimumStock
}

// ClampQuantity aplica el delta de un movimiento a la existencia actual.
// La existencia nunca baja de cero, aunque la salida exceda el stock.
func ClampQuantity(current, delta int) int {
	q := current + delta
	if q < 0 {
		return 0
	}
	return q
}
