package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
)

// folder normaliza mayúsculas/minúsculas con case folding Unicode,
// para que la búsqueda funcione igual con acentos y alfabetos no ASCII.
var folder = cases.Fold()

func containsFold(s, substr string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(folder.String(s), substr)
}

// MatchesSearch es el predicado del ledger para searchParts: subcadena
// case-insensitive sobre name, partNumber y description. Campos ausentes
// no coinciden (no son error).
func MatchesSearch(p *entity.Part, query string) bool {
	q := folder.String(query)
	return containsFold(p.Name, q) ||
		containsFold(p.PartNumber, q) ||
		containsFold(p.Description, q)
}

// FilterParts es el filtro multi-campo de la capa de presentación: función
// pura sobre resultados ya enriquecidos. Coincide si CUALQUIERA de id, name,
// partNumber, description, nombre de categoría, nombre de proveedor, location
// o stockStatus contiene la subcadena, sin distinguir mayúsculas.
func FilterParts(parts []*entity.PartWithDetails, query string) []*entity.PartWithDetails {
	if query == "" {
		return parts
	}
	q := folder.String(query)
	out := make([]*entity.PartWithDetails, 0, len(parts))
	for _, p := range parts {
		if matchesDetails(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesDetails(p *entity.PartWithDetails, q string) bool {
	if containsFold(p.ID, q) ||
		containsFold(p.Name, q) ||
		containsFold(p.PartNumber, q) ||
		containsFold(p.Description, q) ||
		containsFold(p.Location, q) ||
		containsFold(p.StockStatus, q) {
		return true
	}
	if p.Category != nil && containsFold(p.Category.Name, q) {
		return true
	}
	if p.Supplier != nil && containsFold(p.Supplier.Name, q) {
		return true
	}
	return false
}
