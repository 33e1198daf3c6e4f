package repository

import "github.com/tu-usuario/partsflow/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Delete devuelve domain.ErrNotFound si el id no existe; no hay cascada sobre
// los repuestos que lo referencian.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
