package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// fixture levanta un store aislado con sus adaptadores. Cada test tiene su
// propio estado: nada de singletons compartidos.
type fixture struct {
	store      *memory.Store
	suppliers  *memory.SupplierRepo
	categories *memory.CategoryRepo
	parts      *memory.PartRepo
	movements  *memory.MovementRepo
	reports    *memory.ReportRepo
	stats      *memory.StatsRepo
}

func newFixture() *fixture {
	s := memory.NewStore()
	return &fixture{
		store:      s,
		suppliers:  memory.NewSupplierRepository(s),
		categories: memory.NewCategoryRepository(s),
		parts:      memory.NewPartRepository(s),
		movements:  memory.NewMovementRepository(s),
		reports:    memory.NewReportRepository(s),
		stats:      memory.NewStatsRepository(s),
	}
}

func mustPart(t *testing.T, f *fixture, p entity.Part) entity.Part {
	t.Helper()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
		p.UpdatedAt = p.CreatedAt
	}
	require.NoError(t, f.parts.Create(&p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos — registro atómico y piso en cero
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementCreate_SalidaMayorQueStockDejaCero(t *testing.T) {
	f := newFixture()
	p := mustPart(t, f, entity.Part{ID: "p1", Name: "Bomba", PartNumber: "HP-001", Quantity: 3})

	err := f.movements.Create(&entity.Movement{
		ID: "m1", PartID: p.ID, Type: entity.MovementOut, Quantity: 10, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	got, err := f.parts.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Quantity, "la existencia nunca baja de cero")
	assert.Equal(t, entity.StockStatusOut, got.StockStatus)
}

func TestMovementCreate_EntradaSumaYRefrescaUpdatedAt(t *testing.T) {
	f := newFixture()
	old := time.Now().Add(-time.Hour)
	p := mustPart(t, f, entity.Part{
		ID: "p1", Name: "Filtro", PartNumber: "AF-001", Quantity: 10,
		CreatedAt: old, UpdatedAt: old,
	})

	require.NoError(t, f.movements.Create(&entity.Movement{
		ID: "m1", PartID: p.ID, Type: entity.MovementIn, Quantity: 5, CreatedAt: time.Now(),
	}))

	got, err := f.parts.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
	assert.True(t, got.UpdatedAt.After(old),
		"el ajuste por movimiento debe refrescar updatedAt del repuesto")
}

func TestMovementCreate_RepuestoInexistenteQuedaRegistradoSinAjuste(t *testing.T) {
	f := newFixture()

	// Bitácora append-only: el movimiento se acepta aunque el repuesto no exista.
	require.NoError(t, f.movements.Create(&entity.Movement{
		ID: "m1", PartID: "no-existe", Type: entity.MovementIn, Quantity: 5, CreatedAt: time.Now(),
	}))

	// Pero los listados unidos lo excluyen: la referencia no resuelve.
	list, err := f.movements.List()
	require.NoError(t, err)
	assert.Empty(t, list, "movimiento sin repuesto resoluble no aparece en el listado unido")

	got, err := f.movements.GetByID("m1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMovementList_ExcluyeMovimientosDeRepuestosEliminados(t *testing.T) {
	f := newFixture()
	p1 := mustPart(t, f, entity.Part{ID: "p1", Name: "Bomba", PartNumber: "HP-001", Quantity: 5})
	p2 := mustPart(t, f, entity.Part{ID: "p2", Name: "Filtro", PartNumber: "AF-001", Quantity: 5})

	base := time.Now()
	require.NoError(t, f.movements.Create(&entity.Movement{ID: "m1", PartID: p1.ID, Type: entity.MovementIn, Quantity: 1, CreatedAt: base}))
	require.NoError(t, f.movements.Create(&entity.Movement{ID: "m2", PartID: p2.ID, Type: entity.MovementIn, Quantity: 1, CreatedAt: base.Add(time.Second)}))

	require.NoError(t, f.parts.Delete(p1.ID))

	list, err := f.movements.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "los movimientos del repuesto eliminado se excluyen en silencio")
	assert.Equal(t, "m2", list[0].ID)
	assert.Equal(t, p2.Name, list[0].Part.Name)
}

func TestMovementListByPart_FiltraPorRepuesto(t *testing.T) {
	f := newFixture()
	p1 := mustPart(t, f, entity.Part{ID: "p1", Name: "Bomba", PartNumber: "HP-001", Quantity: 5})
	p2 := mustPart(t, f, entity.Part{ID: "p2", Name: "Filtro", PartNumber: "AF-001", Quantity: 5})

	base := time.Now()
	require.NoError(t, f.movements.Create(&entity.Movement{ID: "m1", PartID: p1.ID, Type: entity.MovementIn, Quantity: 1, CreatedAt: base}))
	require.NoError(t, f.movements.Create(&entity.Movement{ID: "m2", PartID: p2.ID, Type: entity.MovementOut, Quantity: 1, CreatedAt: base.Add(time.Second)}))
	require.NoError(t, f.movements.Create(&entity.Movement{ID: "m3", PartID: p1.ID, Type: entity.MovementOut, Quantity: 2, CreatedAt: base.Add(2 * time.Second)}))

	list, err := f.movements.ListByPart(p1.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m1", list[0].ID, "orden cronológico, el más antiguo primero")
	assert.Equal(t, "m3", list[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Repuestos — enriquecimiento y referencias débiles
// ──────────────────────────────────────────────────────────────────────────────

func TestPartGetByID_ReferenciaColganteResuelveAusente(t *testing.T) {
	f := newFixture()
	cat := entity.Category{ID: "c1", Name: "Filtros"}
	require.NoError(t, f.categories.Create(&cat))
	p := mustPart(t, f, entity.Part{ID: "p1", Name: "Filtro", PartNumber: "AF-001", CategoryID: cat.ID, Quantity: 5})

	got, err := f.parts.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category, "con la categoría viva, se resuelve")
	assert.Equal(t, "Filtros", got.Category.Name)

	// Eliminar la categoría no cascadea ni falla: la referencia queda colgando.
	require.NoError(t, f.categories.Delete(cat.ID))

	got, err = f.parts.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Category, "la referencia colgante resuelve a ausente, no a error")
}

func TestPartListLowStock_IncluyeAgotados(t *testing.T) {
	f := newFixture()
	mustPart(t, f, entity.Part{ID: "p1", Name: "A", PartNumber: "A-1", Quantity: 0, MinimumStock: 15})
	mustPart(t, f, entity.Part{ID: "p2", Name: "B", PartNumber: "B-1", Quantity: 8, MinimumStock: 12})
	mustPart(t, f, entity.Part{ID: "p3", Name: "C", PartNumber: "C-1", Quantity: 25, MinimumStock: 10})

	list, err := f.parts.ListLowStock()
	require.NoError(t, err)
	require.Len(t, list, 2)

	ids := []string{list[0].ID, list[1].ID}
	assert.Contains(t, ids, "p1", "el agotado califica para reposición")
	assert.Contains(t, ids, "p2")
}

func TestPartSearch_SubcadenaCaseInsensitive(t *testing.T) {
	f := newFixture()
	mustPart(t, f, entity.Part{ID: "p1", Name: "Air Filter Heavy Duty", PartNumber: "AF-HD-001", Quantity: 5})
	mustPart(t, f, entity.Part{ID: "p2", Name: "Brake Pad Set", PartNumber: "BP-F-002", Description: "Front brake pads", Quantity: 5})

	byName, err := f.parts.Search("air")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "p1", byName[0].ID)

	byNumber, err := f.parts.Search("bp-f")
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, "p2", byNumber[0].ID)

	none, err := f.parts.Search("inexistente")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPartDelete_Inexistente(t *testing.T) {
	f := newFixture()
	err := f.parts.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPartUpdate_NoMutaElArgumentoCompartido(t *testing.T) {
	f := newFixture()
	p := mustPart(t, f, entity.Part{ID: "p1", Name: "Bomba", PartNumber: "HP-001", Quantity: 5})

	p.Name = "Bomba Hidráulica"
	require.NoError(t, f.parts.Update(&p))

	// Mutar el struct del caller después del Update no afecta al store.
	p.Name = "otra cosa"
	got, err := f.parts.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Bomba Hidráulica", got.Name, "el store guarda copias, no punteros del caller")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estadísticas — agregados frescos con aritmética decimal
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_TotalValueDecimalExacto(t *testing.T) {
	f := newFixture()
	mustPart(t, f, entity.Part{
		ID: "p1", Name: "A", PartNumber: "A-1", Quantity: 2,
		UnitPrice: decimal.RequireFromString("10.50"),
	})
	mustPart(t, f, entity.Part{
		ID: "p2", Name: "B", PartNumber: "B-1", Quantity: 3, MinimumStock: 5,
		UnitPrice: decimal.RequireFromString("5.00"),
	})
	require.NoError(t, f.suppliers.Create(&entity.Supplier{ID: "s1", Name: "AutoParts"}))

	stats, err := f.stats.GetInventoryStats()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalParts)
	assert.Equal(t, 1, stats.LowStockCount, "solo p2 está bajo el umbral")
	assert.Equal(t, 1, stats.ActiveSuppliers)
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("36.00")),
		"2×10.50 + 3×5.00 = 36.00 exacto, sin deriva de coma flotante; got %s", stats.TotalValue)
}

func TestStats_SeRecalculanEnCadaLlamada(t *testing.T) {
	f := newFixture()
	p := mustPart(t, f, entity.Part{
		ID: "p1", Name: "A", PartNumber: "A-1", Quantity: 1,
		UnitPrice: decimal.RequireFromString("10.00"),
	})

	before, err := f.stats.GetInventoryStats()
	require.NoError(t, err)
	assert.True(t, before.TotalValue.Equal(decimal.RequireFromString("10.00")))

	require.NoError(t, f.movements.Create(&entity.Movement{
		ID: "m1", PartID: p.ID, Type: entity.MovementIn, Quantity: 4, CreatedAt: time.Now(),
	}))

	after, err := f.stats.GetInventoryStats()
	require.NoError(t, err)
	assert.True(t, after.TotalValue.Equal(decimal.RequireFromString("50.00")),
		"los agregados se recalculan frescos, no se cachean")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes — bitácora ordenada descendente
// ──────────────────────────────────────────────────────────────────────────────

func TestReportList_MasRecientePrimero(t *testing.T) {
	f := newFixture()
	base := time.Now()
	require.NoError(t, f.reports.Create(&entity.Report{ID: "r1", Name: "viejo", Type: entity.ReportInventory, CreatedAt: base}))
	require.NoError(t, f.reports.Create(&entity.Report{ID: "r2", Name: "nuevo", Type: entity.ReportLowStock, CreatedAt: base.Add(time.Minute)}))

	list, err := f.reports.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID, "createdAt descendente: el más reciente primero")
	assert.Equal(t, "r1", list[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Seed de demostración
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedDemo_CargaCatalogoDeEjemplo(t *testing.T) {
	f := newFixture()
	memory.SeedDemo(f.store)

	parts, err := f.parts.List()
	require.NoError(t, err)
	assert.Len(t, parts, 4)

	cats, err := f.categories.List()
	require.NoError(t, err)
	assert.Len(t, cats, 6)

	sups, err := f.suppliers.List()
	require.NoError(t, err)
	assert.Len(t, sups, 5)

	// Todas las referencias del seed resuelven.
	for _, p := range parts {
		assert.NotNil(t, p.Category, "repuesto %s debe tener categoría resuelta", p.PartNumber)
		assert.NotNil(t, p.Supplier, "repuesto %s debe tener proveedor resuelto", p.PartNumber)
	}
}
