// Package configurator es el motor de configuración: cruza el catálogo compilado con el
// snapshot de productos personalizados, aplica los filtros, conduce el asistente paso a paso
// y compone el código y la descripción finales.
//
// El paquete es puro: no hace I/O ni registra logs. Todos los fallos se devuelven como error.
package configurator

import (
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

// Matcher resuelve modelos y decide inclusión por filtros contra un catálogo y un snapshot fijos.
type Matcher struct {
	catalog  *catalog.SpecificationCatalog
	snapshot *entity.CatalogSnapshot
}

// NewMatcher construye el matcher.
func NewMatcher(cat *catalog.SpecificationCatalog, snap *entity.CatalogSnapshot) *Matcher {
	return &Matcher{catalog: cat, snapshot: snap}
}

// Matches es true si y solo si cada filtro activo está en las etiquetas del candidato (AND).
// Sin filtros activos todo candidato coincide. Un candidato desconocido no coincide con
// ningún conjunto no vacío.
func (m *Matcher) Matches(ref entity.ModelRef, active []string) bool {
	if len(active) == 0 {
		return true
	}
	switch ref.Kind {
	case entity.ModelPredefined:
		if _, ok := m.catalog.Model(ref.ID); !ok {
			return false
		}
		for _, id := range active {
			if !m.catalog.HasCapability(ref.ID, id) {
				return false
			}
		}
		return true
	case entity.ModelCustom:
		p, ok := m.snapshot.CustomProduct(ref.ID)
		if !ok {
			return false
		}
		for _, id := range active {
			if !p.HasFilter(id) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Resolve devuelve la forma común del modelo referenciado.
func (m *Matcher) Resolve(ref entity.ModelRef) (entity.ResolvedModel, bool) {
	switch ref.Kind {
	case entity.ModelPredefined:
		pm, ok := m.catalog.Model(ref.ID)
		if !ok {
			return entity.ResolvedModel{}, false
		}
		return resolvePredefined(pm), true
	case entity.ModelCustom:
		p, ok := m.snapshot.CustomProduct(ref.ID)
		if !ok {
			return entity.ResolvedModel{}, false
		}
		return resolveCustom(p), true
	default:
		return entity.ResolvedModel{}, false
	}
}

// ListCandidates modelos predefinidos del tipo (orden del catálogo) seguidos de los productos
// personalizados del tipo (orden del snapshot), filtrados por Matches.
func (m *Matcher) ListCandidates(typeID string, active []string) []entity.ResolvedModel {
	var out []entity.ResolvedModel
	for _, pm := range m.catalog.ModelsByType(typeID) {
		if m.Matches(entity.PredefinedRef(pm.ID), active) {
			out = append(out, resolvePredefined(pm))
		}
	}
	for _, p := range m.snapshot.CustomProductsByType(typeID) {
		if m.Matches(entity.CustomRef(p.ID), active) {
			out = append(out, resolveCustom(p))
		}
	}
	return out
}

// IsCandidate indica si ref está en ListCandidates(typeID, active).
func (m *Matcher) IsCandidate(ref entity.ModelRef, typeID string, active []string) bool {
	model, ok := m.Resolve(ref)
	if !ok || model.TypeID != typeID {
		return false
	}
	return m.Matches(ref, active)
}

func resolvePredefined(pm entity.PredefinedModel) entity.ResolvedModel {
	return entity.ResolvedModel{
		Ref:            entity.PredefinedRef(pm.ID),
		TypeID:         pm.TypeID,
		BaseCode:       entity.BaseToken(pm.Code),
		DisplayName:    pm.DisplayName,
		Description:    pm.Description,
		BasePrice:      pm.BasePrice,
		Specifications: pm.Specifications,
		Tags:           pm.CapabilityTags,
	}
}

func resolveCustom(p entity.CustomProduct) entity.ResolvedModel {
	name := p.Name
	if name == "" {
		name = entity.BaseToken(p.Code)
	}
	return entity.ResolvedModel{
		Ref:            entity.CustomRef(p.ID),
		TypeID:         p.TypeID,
		BaseCode:       entity.BaseToken(p.Code),
		DisplayName:    name,
		Description:    p.Description,
		BasePrice:      p.BasePrice,
		Specifications: p.Specifications,
		Tags:           p.FilterIDs,
	}
}
