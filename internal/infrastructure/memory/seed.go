package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
)

// SeedDemo precarga categorías, proveedores y repuestos de ejemplo para
// entornos de demostración. Solo tiene sentido con el backend en memoria:
// el estado se pierde al reiniciar el proceso.
func SeedDemo(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := []entity.Category{
		{Name: "Engine Parts", Description: "Engine components and accessories"},
		{Name: "Braking System", Description: "Brake pads, discs, and hydraulics"},
		{Name: "Transmission", Description: "Transmission parts and fluids"},
		{Name: "Hydraulics", Description: "Hydraulic pumps, hoses, and cylinders"},
		{Name: "Electrical", Description: "Electrical components and wiring"},
		{Name: "Fuel System", Description: "Fuel injectors, filters, and pumps"},
	}
	catIDs := make([]string, 0, len(categories))
	for _, c := range categories {
		c.ID = uuid.New().String()
		cc := c
		s.categories[c.ID] = &cc
		catIDs = append(catIDs, c.ID)
	}

	suppliers := []entity.Supplier{
		{Name: "AutoParts Co.", ContactEmail: "info@autoparts.com", ContactPhone: "+1-555-0123"},
		{Name: "EngineMax Ltd.", ContactEmail: "sales@enginemax.com", ContactPhone: "+1-555-0124"},
		{Name: "HydroSystems", ContactEmail: "orders@hydrosystems.com", ContactPhone: "+1-555-0125"},
		{Name: "TransParts Inc.", ContactEmail: "support@transparts.com", ContactPhone: "+1-555-0126"},
		{Name: "FuelTech Pro", ContactEmail: "contact@fueltech.com", ContactPhone: "+1-555-0127"},
	}
	supIDs := make([]string, 0, len(suppliers))
	for _, sup := range suppliers {
		sup.ID = uuid.New().String()
		ss := sup
		s.suppliers[sup.ID] = &ss
		supIDs = append(supIDs, sup.ID)
	}

	parts := []entity.Part{
		{
			Name:        "Air Filter Heavy Duty",
			PartNumber:  "AF-HD-001",
			Description: "High-performance air filter for heavy vehicles",
			Quantity:    25, MinimumStock: 10,
			UnitPrice: decimal.RequireFromString("45.99"),
			Location:  "A1-B2-C3",
		},
		{
			Name:        "Brake Pad Set Front",
			PartNumber:  "BP-F-002",
			Description: "Front brake pad set for heavy duty trucks",
			Quantity:    8, MinimumStock: 12,
			UnitPrice: decimal.RequireFromString("89.50"),
			Location:  "B2-C3-D4",
		},
		{
			Name:        "Hydraulic Pump",
			PartNumber:  "HP-001",
			Description: "Main hydraulic pump for lifting systems",
			Quantity:    3, MinimumStock: 5,
			UnitPrice: decimal.RequireFromString("450.00"),
			Location:  "C1-A2-B3",
		},
		{
			Name:        "Engine Oil Filter",
			PartNumber:  "OF-ENG-003",
			Description: "Premium engine oil filter",
			Quantity:    0, MinimumStock: 15,
			UnitPrice: decimal.RequireFromString("28.75"),
			Location:  "A2-B1-C2",
		},
	}
	now := time.Now()
	for i, p := range parts {
		p.ID = uuid.New().String()
		p.CategoryID = catIDs[i%len(catIDs)]
		p.SupplierID = supIDs[i%len(supIDs)]
		p.CreatedAt = now
		p.UpdatedAt = now
		pp := p
		s.parts[p.ID] = &pp
	}
}
