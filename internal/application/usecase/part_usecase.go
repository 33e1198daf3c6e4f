package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

// PartUseCase casos de uso CRUD y consultas para repuestos. La existencia
// (Quantity) solo se modifica aquí vía alta/edición directa; los ajustes por
// movimientos pasan por MovementUseCase.
type PartUseCase struct {
	repo repository.PartRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// Create crea un repuesto. PartNumber repetido -> domain.ErrDuplicate.
// Quantity/MinimumStock por defecto 0 y UnitPrice 0.00 vienen dados por los
// zero values del request.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	existing, _ := uc.repo.GetByPartNumber(in.PartNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	price := in.UnitPrice
	if price.IsZero() {
		price = decimal.New(0, -2) // "0.00"
	}
	now := time.Now()
	part := &entity.Part{
		ID:           uuid.New().String(),
		Name:         in.Name,
		PartNumber:   in.PartNumber,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		Quantity:     in.Quantity,
		MinimumStock: in.MinimumStock,
		UnitPrice:    price,
		Location:     in.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID obtiene un repuesto enriquecido por ID. nil si no existe.
func (uc *PartUseCase) GetByID(id string) (*dto.PartDetailsResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	return toPartDetailsResponse(part), nil
}

// GetByPartNumber obtiene un repuesto enriquecido por número de parte.
func (uc *PartUseCase) GetByPartNumber(partNumber string) (*dto.PartDetailsResponse, error) {
	part, err := uc.repo.GetByPartNumber(partNumber)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	return toPartDetailsResponse(part), nil
}

// List lista repuestos enriquecidos; con search no vacío aplica el predicado
// case-insensitive sobre name, partNumber y description.
func (uc *PartUseCase) List(search string) ([]dto.PartDetailsResponse, error) {
	var (
		list []*entity.PartWithDetails
		err  error
	)
	if search != "" {
		list, err = uc.repo.Search(search)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	return toPartDetailsList(list), nil
}

// ListLowStock lista repuestos con quantity <= minimumStock (incluye agotados).
func (uc *PartUseCase) ListLowStock() ([]dto.PartDetailsResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toPartDetailsList(list), nil
}

// Update aplica un merge superficial sobre los campos permitidos y refresca
// updatedAt siempre, aunque ningún campo haya cambiado de valor.
func (uc *PartUseCase) Update(id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	details, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, nil
	}
	part := details.Part
	if in.PartNumber != nil && *in.PartNumber != part.PartNumber {
		existing, _ := uc.repo.GetByPartNumber(*in.PartNumber)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		part.PartNumber = *in.PartNumber
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.CategoryID != nil {
		part.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		part.SupplierID = *in.SupplierID
	}
	if in.Quantity != nil {
		part.Quantity = *in.Quantity
	}
	if in.MinimumStock != nil {
		part.MinimumStock = *in.MinimumStock
	}
	if in.UnitPrice != nil {
		part.UnitPrice = *in.UnitPrice
	}
	if in.Location != nil {
		part.Location = *in.Location
	}
	part.UpdatedAt = time.Now()
	if err := uc.repo.Update(&part); err != nil {
		return nil, err
	}
	return toPartResponse(&part), nil
}

// Delete elimina un repuesto por ID (domain.ErrNotFound si no existe).
// Sus movimientos históricos quedan registrados pero dejan de aparecer en los
// listados unidos.
func (uc *PartUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:           p.ID,
		Name:         p.Name,
		PartNumber:   p.PartNumber,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		Quantity:     p.Quantity,
		MinimumStock: p.MinimumStock,
		UnitPrice:    p.UnitPrice,
		Location:     p.Location,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPartDetailsResponse(p *entity.PartWithDetails) *dto.PartDetailsResponse {
	if p == nil {
		return nil
	}
	return &dto.PartDetailsResponse{
		PartResponse: *toPartResponse(&p.Part),
		Category:     toCategoryResponse(p.Category),
		Supplier:     toSupplierResponse(p.Supplier),
		StockStatus:  p.StockStatus,
	}
}

func toPartDetailsList(list []*entity.PartWithDetails) []dto.PartDetailsResponse {
	items := make([]dto.PartDetailsResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartDetailsResponse(p))
	}
	return items
}
