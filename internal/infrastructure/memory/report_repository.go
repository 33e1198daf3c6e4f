package memory

import (
	"sort"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
)

// ReportRepo implementación del puerto ReportRepository sobre el store en memoria.
type ReportRepo struct {
	s *Store
}

// NewReportRepository construye el adaptador sobre el store compartido.
func NewReportRepository(s *Store) *ReportRepo {
	return &ReportRepo{s: s}
}

// Create registra un reporte (solo altas, nunca se actualizan ni eliminan).
func (r *ReportRepo) Create(report *entity.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *report
	r.s.reports[cp.ID] = &cp
	return nil
}

// List lista los reportes ordenados por createdAt descendente (más reciente primero).
func (r *ReportRepo) List() ([]*entity.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Report, 0, len(r.s.reports))
	for _, rep := range r.s.reports {
		cp := *rep
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
