package configurator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/configurador-api/internal/domain/configurator"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

func refs(models []entity.ResolvedModel) []string {
	out := make([]string, 0, len(models))
	for _, m := range models {
		out = append(out, m.Ref.String())
	}
	return out
}

// TestMatches_ConjuntoVacioEsIdentidad: sin filtros activos todo candidato coincide,
// incluso uno desconocido.
func TestMatches_ConjuntoVacioEsIdentidad(t *testing.T) {
	m := configurator.NewMatcher(testCatalog(t), testSnapshot())

	assert.True(t, m.Matches(entity.PredefinedRef("txth52"), nil))
	assert.True(t, m.Matches(entity.CustomRef("cp-1"), []string{}))
	assert.True(t, m.Matches(entity.CustomRef("no-existe"), nil))
}

// TestMatches_Interseccion: coincide si y solo si F ⊆ etiquetas(candidato).
func TestMatches_Interseccion(t *testing.T) {
	m := configurator.NewMatcher(testCatalog(t), testSnapshot())

	casos := []struct {
		ref    entity.ModelRef
		active []string
		want   bool
	}{
		{entity.PredefinedRef("txth52"), []string{"indoor"}, true},
		{entity.PredefinedRef("txth52"), []string{"indoor", "duct"}, false},
		{entity.PredefinedRef("txth60"), []string{"duct", "display"}, true},
		{entity.PredefinedRef("txth60"), []string{"display"}, true},
		{entity.CustomRef("cp-1"), []string{"indoor"}, true},
		{entity.CustomRef("cp-1"), []string{"indoor", "co2"}, false},
		{entity.CustomRef("cp-2"), []string{"co2", "indoor"}, true},
		{entity.PredefinedRef("txlv"), []string{"indoor"}, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, m.Matches(c.ref, c.active), "%s con %v", c.ref, c.active)
	}
}

// TestMatches_CandidatoSinDatosNoCoincide: la ausencia de datos excluye.
func TestMatches_CandidatoSinDatosNoCoincide(t *testing.T) {
	m := configurator.NewMatcher(testCatalog(t), testSnapshot())

	assert.False(t, m.Matches(entity.PredefinedRef("no-existe"), []string{"indoor"}))
	assert.False(t, m.Matches(entity.CustomRef("no-existe"), []string{"indoor"}))
	assert.False(t, m.Matches(entity.ModelRef{}, []string{"indoor"}))
}

// TestListCandidates_PredefinidosPrimero: orden del catálogo y luego orden del snapshot.
func TestListCandidates_PredefinidosPrimero(t *testing.T) {
	m := configurator.NewMatcher(testCatalog(t), testSnapshot())

	got := refs(m.ListCandidates("temp-humid", nil))
	assert.Equal(t, []string{"predefined:txth52", "predefined:txth60", "custom:cp-1", "custom:cp-2"}, got)

	again := refs(m.ListCandidates("temp-humid", nil))
	assert.Equal(t, got, again, "el orden debe ser estable para el mismo snapshot y filtros")
}

// TestListCandidates_FiltroAND: ejemplo de dos productos personalizados, solo el
// etiquetado {indoor, co2} sobrevive a los filtros {indoor, co2}.
func TestListCandidates_FiltroAND(t *testing.T) {
	m := configurator.NewMatcher(testCatalog(t), testSnapshot())

	got := refs(m.ListCandidates("temp-humid", []string{"indoor", "co2"}))
	assert.Equal(t, []string{"custom:cp-2"}, got)
}

func TestResolve_FormaComun(t *testing.T) {
	m := configurator.NewMatcher(testCatalog(t), testSnapshot())

	pm, ok := m.Resolve(entity.PredefinedRef("txth60"))
	assert.True(t, ok)
	assert.Equal(t, "TxTH60", pm.BaseCode)
	assert.Equal(t, []string{"duct", "display"}, pm.Tags)

	cp, ok := m.Resolve(entity.CustomRef("cp-2"))
	assert.True(t, ok)
	assert.Equal(t, "CTH2", cp.BaseCode)
	assert.Equal(t, "CTH2", cp.DisplayName)
	assert.Equal(t, "Mount", cp.Specifications[0].Name)

	_, ok = m.Resolve(entity.CustomRef("no-existe"))
	assert.False(t, ok)
}

func TestIsCandidate_TipoDistinto(t *testing.T) {
	m := configurator.NewMatcher(testCatalog(t), testSnapshot())

	assert.True(t, m.IsCandidate(entity.PredefinedRef("txth52"), "temp-humid", nil))
	assert.False(t, m.IsCandidate(entity.PredefinedRef("txlv"), "temp-humid", nil))
}
