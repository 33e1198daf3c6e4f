package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

// MovementUseCase registra movimientos de inventario y los consulta unidos
// con su repuesto. El registro y el ajuste de existencia ocurren en una sola
// mutación atómica del repositorio; el movimiento se guarda aunque el
// repuesto no exista (bitácora append-only sin efecto lateral en ese caso).
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// Create valida tipo y magnitud, persiste el movimiento y aplica el ajuste.
// Devuelve el movimiento creado, no el repuesto mutado: el caller debe
// re-consultar el repuesto para ver la existencia nueva.
func (uc *MovementUseCase) Create(in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	movType := entity.MovementType(in.Type)
	if !movType.IsValid() || in.Quantity <= 0 || in.PartID == "" {
		return nil, domain.ErrInvalidInput
	}
	movement := &entity.Movement{
		ID:        uuid.New().String(),
		PartID:    in.PartID,
		Type:      movType,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// GetByID obtiene un movimiento unido con su repuesto. nil si el movimiento
// no existe o su repuesto fue eliminado.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementWithPartResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMovementWithPartResponse(m), nil
}

// List lista todos los movimientos con repuesto resoluble.
func (uc *MovementUseCase) List() ([]dto.MovementWithPartResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toMovementWithPartList(list), nil
}

// ListByPart lista los movimientos de un repuesto con repuesto resoluble.
func (uc *MovementUseCase) ListByPart(partID string) ([]dto.MovementWithPartResponse, error) {
	list, err := uc.repo.ListByPart(partID)
	if err != nil {
		return nil, err
	}
	return toMovementWithPartList(list), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		PartID:    m.PartID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}

func toMovementWithPartResponse(m *entity.MovementWithPart) *dto.MovementWithPartResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementWithPartResponse{
		MovementResponse: *toMovementResponse(&m.Movement),
		Part:             *toPartResponse(&m.Part),
	}
}

func toMovementWithPartList(list []*entity.MovementWithPart) []dto.MovementWithPartResponse {
	items := make([]dto.MovementWithPartResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementWithPartResponse(m))
	}
	return items
}
