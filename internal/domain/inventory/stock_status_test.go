package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// StatusFor — la clasificación derivada de existencia
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusFor_Clasificacion(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minimum  int
		want     string
	}{
		{"cero es agotado", 0, 10, entity.StockStatusOut},
		{"cero con umbral cero también es agotado", 0, 0, entity.StockStatusOut},
		{"igual al umbral es bajo", 10, 10, entity.StockStatusLow},
		{"debajo del umbral es bajo", 3, 5, entity.StockStatusLow},
		{"encima del umbral es normal", 11, 10, entity.StockStatusIn},
		{"positivo con umbral cero es normal", 1, 0, entity.StockStatusIn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.StatusFor(tc.quantity, tc.minimum))
		})
	}
}

func TestIsLowStock_AgotadosCalificanSiempre(t *testing.T) {
	// quantity 0 <= minimumStock para todo umbral válido: el agotado
	// siempre aparece en la lista de reposición.
	assert.True(t, inventory.IsLowStock(&entity.Part{Quantity: 0, MinimumStock: 0}),
		"agotado con umbral cero debe calificar")
	assert.True(t, inventory.IsLowStock(&entity.Part{Quantity: 5, MinimumStock: 5}),
		"en el umbral exacto debe calificar")
	assert.False(t, inventory.IsLowStock(&entity.Part{Quantity: 6, MinimumStock: 5}),
		"encima del umbral no debe calificar")
}

// ──────────────────────────────────────────────────────────────────────────────
// ClampQuantity — el piso en cero de la existencia
// ──────────────────────────────────────────────────────────────────────────────

func TestClampQuantity_PisoEnCero(t *testing.T) {
	assert.Equal(t, 15, inventory.ClampQuantity(10, 5), "la entrada suma")
	assert.Equal(t, 5, inventory.ClampQuantity(10, -5), "la salida resta")
	assert.Equal(t, 0, inventory.ClampQuantity(10, -10), "salida exacta deja cero")
	assert.Equal(t, 0, inventory.ClampQuantity(3, -10),
		"una salida mayor que la existencia deja cero, nunca negativo")
	assert.Equal(t, 0, inventory.ClampQuantity(0, -1), "desde cero no se baja más")
}
