package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/configurador-api/internal/domain"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
	"github.com/jhoicas/configurador-api/internal/domain/repository"
	"github.com/jhoicas/configurador-api/internal/infrastructure/memory"
)

func TestNewSeededStore_CoincideConCatalogoCompilado(t *testing.T) {
	s, err := memory.NewSeededStore()
	require.NoError(t, err)
	ctx := context.Background()

	cats, err := s.Categories().List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "sensors", cats[0].Types[0].CategoryID)

	// Cada etiqueta de capacidad del catálogo compilado tiene su filtro predefinido.
	filters, err := s.Filters().List(ctx)
	require.NoError(t, err)
	byID := make(map[string]entity.Filter, len(filters))
	for _, f := range filters {
		byID[f.ID] = f
	}
	for _, m := range catalog.Default().Models() {
		for _, tag := range m.CapabilityTags {
			f, ok := byID[tag]
			if assert.True(t, ok, "falta filtro para %s", tag) {
				assert.Equal(t, m.TypeID, f.TypeID)
				assert.True(t, f.Predefined)
			}
		}
	}
}

func TestFilterRepository_DeleteRespetaPredefinidos(t *testing.T) {
	s, err := memory.NewSeededStore()
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, s.Filters().Delete(ctx, "th-indoor"), domain.ErrNotFound)

	require.NoError(t, s.Filters().Create(ctx, &entity.Filter{ID: "f1", Name: "Propio", TypeID: "temp-humid"}))
	assert.ErrorIs(t, s.Filters().Create(ctx, &entity.Filter{ID: "f2", Name: "Propio", TypeID: "temp-humid"}), domain.ErrDuplicate)
	assert.ErrorIs(t, s.Filters().Create(ctx, &entity.Filter{ID: "f3", Name: "X", TypeID: "nope"}), domain.ErrNotFound)
	require.NoError(t, s.Filters().Delete(ctx, "f1"))
}

func TestRunCatalog_RevierteAlFallar(t *testing.T) {
	s := memory.NewStore(
		[]entity.Category{{ID: "c", Types: []entity.ProductType{{ID: "t"}}}},
		[]entity.Filter{{ID: "f", Name: "F", TypeID: "t"}},
	)
	ctx := context.Background()
	require.NoError(t, s.CustomProducts().Create(ctx, &entity.CustomProduct{ID: "p", Code: "P-1", TypeID: "t", FilterIDs: []string{"f"}}))

	boom := errors.New("boom")
	err := s.RunCatalog(ctx, func(filters repository.FilterRepository, products repository.CustomProductRepository) error {
		require.NoError(t, products.RemoveFilter(ctx, "f"))
		require.NoError(t, filters.Delete(ctx, "f"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	f, err := s.Filters().GetByID(ctx, "f")
	require.NoError(t, err)
	assert.NotNil(t, f, "el filtro vuelve tras el rollback")
	p, err := s.CustomProducts().GetByID(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, []string{"f"}, p.FilterIDs)
}

func TestCustomProductRepository_DevuelveCopias(t *testing.T) {
	s := memory.NewStore([]entity.Category{{ID: "c", Types: []entity.ProductType{{ID: "t"}}}}, nil)
	ctx := context.Background()
	require.NoError(t, s.CustomProducts().Create(ctx, &entity.CustomProduct{ID: "p", Code: "P-1", FilterIDs: []string{"a"}}))

	p, err := s.CustomProducts().GetByCode(ctx, "P-1")
	require.NoError(t, err)
	p.FilterIDs[0] = "mutado"

	again, err := s.CustomProducts().GetByID(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.FilterIDs)

	missing, err := s.CustomProducts().GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
