package repository

import "github.com/tu-usuario/partsflow/internal/domain/entity"

// ReportRepository define el puerto de persistencia para Report (DIP).
// Solo altas y listado: los reportes nunca se actualizan ni eliminan.
type ReportRepository interface {
	Create(report *entity.Report) error
	List() ([]*entity.Report, error) // ordenados por createdAt descendente
}
