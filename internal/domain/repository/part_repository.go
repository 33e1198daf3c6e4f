package repository

import "github.com/tu-usuario/partsflow/internal/domain/entity"

// PartRepository define el puerto de persistencia para Part (DIP).
// Las lecturas devuelven el repuesto enriquecido con categoría, proveedor y
// estado de stock resueltos al momento de la consulta; las referencias
// colgantes resuelven a nil, nunca a error.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.PartWithDetails, error)
	GetByPartNumber(partNumber string) (*entity.PartWithDetails, error)
	List() ([]*entity.PartWithDetails, error)
	Search(query string) ([]*entity.PartWithDetails, error)
	ListLowStock() ([]*entity.PartWithDetails, error)
	Update(part *entity.Part) error
	Delete(id string) error
}
