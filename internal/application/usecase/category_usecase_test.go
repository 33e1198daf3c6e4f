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

func newCategoryUC() *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(memory.NewCategoryRepository(memory.NewStore()))
}

func TestCategoryCreate_NombreUnico(t *testing.T) {
	uc := newCategoryUC()

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Filtros"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Filtros", Description: "otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_RenombrarAUnNombreOcupado(t *testing.T) {
	uc := newCategoryUC()
	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Filtros"})
	require.NoError(t, err)
	frenos, err := uc.Create(dto.CreateCategoryRequest{Name: "Frenos"})
	require.NoError(t, err)

	name := "Filtros"
	_, err = uc.Update(frenos.ID, dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "la unicidad también aplica al renombrar")

	// Reenviar el propio nombre no es conflicto.
	same := "Frenos"
	out, err := uc.Update(frenos.ID, dto.UpdateCategoryRequest{Name: &same})
	require.NoError(t, err)
	assert.Equal(t, "Frenos", out.Name)
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	uc := newCategoryUC()
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestCategoryGetByID_Inexistente(t *testing.T) {
	uc := newCategoryUC()
	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
