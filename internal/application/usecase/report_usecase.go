package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

// ReportUseCase registra metadatos de reportes generados (append-only).
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Create registra un reporte con id y createdAt generados.
func (uc *ReportUseCase) Create(in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	report := &entity.Report{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		DateRange: in.DateRange,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(report); err != nil {
		return nil, err
	}
	return toReportResponse(report), nil
}

// List lista los reportes, el más reciente primero.
func (uc *ReportUseCase) List() ([]dto.ReportResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReportResponse(r))
	}
	return items, nil
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	return &dto.ReportResponse{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		DateRange: r.DateRange,
		CreatedAt: r.CreatedAt,
	}
}
