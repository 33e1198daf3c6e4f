package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de persistencia para reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create registra un reporte (append-only).
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (id, name, type, date_range, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.Name, report.Type, report.DateRange, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// List lista los reportes, el más reciente primero.
func (r *ReportRepo) List() ([]*entity.Report, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, type, date_range, created_at
		FROM reports ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.Name, &rep.Type, &rep.DateRange, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, &rep)
	}
	return out, rows.Err()
}
