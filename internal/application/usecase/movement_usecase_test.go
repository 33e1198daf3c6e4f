package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/partsflow/internal/application/dto"
	"github.com/tu-usuario/partsflow/internal/application/usecase"
	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/infrastructure/memory"
)

func newMovementFixture() (*usecase.MovementUseCase, *usecase.PartUseCase) {
	store := memory.NewStore()
	return usecase.NewMovementUseCase(memory.NewMovementRepository(store)),
		usecase.NewPartUseCase(memory.NewPartRepository(store))
}

func TestMovementCreate_AjustaExistencia(t *testing.T) {
	movUC, partUC := newMovementFixture()
	part, err := partUC.Create(dto.CreatePartRequest{Name: "Filtro", PartNumber: "AF-001", Quantity: 10})
	require.NoError(t, err)

	out, err := movUC.Create(dto.CreateMovementRequest{
		PartID: part.ID, Type: "out", Quantity: 4, Reason: "orden de trabajo 812",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "out", out.Type)

	// La respuesta es el movimiento, no el repuesto: hay que re-consultar.
	got, err := partUC.GetByID(part.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Quantity)
}

func TestMovementCreate_TipoDesconocidoSeRechaza(t *testing.T) {
	movUC, partUC := newMovementFixture()
	part, err := partUC.Create(dto.CreatePartRequest{Name: "Filtro", PartNumber: "AF-001", Quantity: 10})
	require.NoError(t, err)

	// "adjustment" no es entrada ni salida: se rechaza en la frontera, no se
	// interpreta en silencio como salida.
	_, err = movUC.Create(dto.CreateMovementRequest{PartID: part.ID, Type: "adjustment", Quantity: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := partUC.GetByID(part.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity, "un movimiento rechazado no toca la existencia")
}

func TestMovementCreate_MagnitudInvalida(t *testing.T) {
	movUC, _ := newMovementFixture()

	_, err := movUC.Create(dto.CreateMovementRequest{PartID: "p1", Type: "in", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity cero se rechaza")

	_, err = movUC.Create(dto.CreateMovementRequest{PartID: "p1", Type: "in", Quantity: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity negativa se rechaza")

	_, err = movUC.Create(dto.CreateMovementRequest{PartID: "", Type: "in", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "partId vacío se rechaza")
}

func TestMovementCreate_RepuestoInexistenteSeRegistra(t *testing.T) {
	movUC, _ := newMovementFixture()

	out, err := movUC.Create(dto.CreateMovementRequest{PartID: "fantasma", Type: "in", Quantity: 5})
	require.NoError(t, err, "la bitácora acepta movimientos de repuestos inexistentes")
	assert.NotEmpty(t, out.ID)

	// Sin repuesto resoluble el movimiento no aparece en los listados unidos.
	list, err := movUC.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
