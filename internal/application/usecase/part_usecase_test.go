package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/application/usecase"
	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/infrastructure/memory"
)

func newPartUC() (*usecase.PartUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewPartUseCase(memory.NewPartRepository(store)), store
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestPartCreate_DefectosDeCampos(t *testing.T) {
	uc, _ := newPartUC()

	// Solo los obligatorios: el resto toma sus defectos.
	out, err := uc.Create(dto.CreatePartRequest{Name: "Filtro", PartNumber: "AF-001"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "el id se genera en el servidor")
	assert.Equal(t, 0, out.Quantity)
	assert.Equal(t, 0, out.MinimumStock)
	assert.Equal(t, "0.00", out.UnitPrice.StringFixed(2), "precio por defecto 0.00")
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt, "en el alta createdAt y updatedAt coinciden")
}

func TestPartCreate_PartNumberRepetido(t *testing.T) {
	uc, _ := newPartUC()

	_, err := uc.Create(dto.CreatePartRequest{Name: "Filtro", PartNumber: "AF-001"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreatePartRequest{Name: "Otro filtro", PartNumber: "AF-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"partNumber es único en toda la colección")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — merge parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestPartUpdate_MergePreservaCamposAusentes(t *testing.T) {
	uc, _ := newPartUC()
	created, err := uc.Create(dto.CreatePartRequest{
		Name: "Filtro", PartNumber: "AF-001", Description: "original",
		Quantity: 10, UnitPrice: decimal.RequireFromString("45.99"),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdatePartRequest{Name: strPtr("Filtro HD")})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Filtro HD", out.Name)
	assert.Equal(t, "original", out.Description, "los campos nil se preservan")
	assert.Equal(t, 10, out.Quantity)
	assert.True(t, out.UnitPrice.Equal(decimal.RequireFromString("45.99")))
}

func TestPartUpdate_RefrescaUpdatedAtSiempre(t *testing.T) {
	uc, _ := newPartUC()
	created, err := uc.Create(dto.CreatePartRequest{Name: "Filtro", PartNumber: "AF-001"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	// Update sin campos: no cambia nada de valor, pero updatedAt avanza igual.
	out, err := uc.Update(created.ID, dto.UpdatePartRequest{})
	require.NoError(t, err)
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt),
		"updatedAt se refresca aunque ningún campo cambie")
	assert.Equal(t, created.CreatedAt.Unix(), out.CreatedAt.Unix(), "createdAt es inmutable")
}

func TestPartUpdate_CambioDePartNumberVerificaUnicidad(t *testing.T) {
	uc, _ := newPartUC()
	_, err := uc.Create(dto.CreatePartRequest{Name: "A", PartNumber: "A-1"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreatePartRequest{Name: "B", PartNumber: "B-1"})
	require.NoError(t, err)

	_, err = uc.Update(b.ID, dto.UpdatePartRequest{PartNumber: strPtr("A-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Reenviar el propio partNumber no es conflicto.
	out, err := uc.Update(b.ID, dto.UpdatePartRequest{PartNumber: strPtr("B-1")})
	require.NoError(t, err)
	assert.Equal(t, "B-1", out.PartNumber)
}

func TestPartUpdate_Inexistente(t *testing.T) {
	uc, _ := newPartUC()
	out, err := uc.Update("no-existe", dto.UpdatePartRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out, "repuesto inexistente -> nil, el handler lo traduce a 404")
}

// ──────────────────────────────────────────────────────────────────────────────
// List / stockStatus derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestPartList_StockStatusDerivado(t *testing.T) {
	uc, _ := newPartUC()
	created, err := uc.Create(dto.CreatePartRequest{
		Name: "Filtro", PartNumber: "AF-001", Quantity: 8, MinimumStock: 12,
	})
	require.NoError(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusLow, got.StockStatus)

	// Editar la existencia por encima del umbral cambia el estado derivado.
	_, err = uc.Update(created.ID, dto.UpdatePartRequest{Quantity: intPtr(20)})
	require.NoError(t, err)

	got, err = uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusIn, got.StockStatus,
		"el estado se calcula en lectura, nunca se cachea")
}

func TestPartList_ConBusqueda(t *testing.T) {
	uc, _ := newPartUC()
	_, err := uc.Create(dto.CreatePartRequest{Name: "Air Filter", PartNumber: "AF-001"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreatePartRequest{Name: "Brake Pad", PartNumber: "BP-002"})
	require.NoError(t, err)

	all, err := uc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := uc.List("brake")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Brake Pad", filtered[0].Name)
}
