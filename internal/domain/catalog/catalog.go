// Package catalog contiene el catálogo compilado de modelos predefinidos: definiciones de
// especificaciones, listas de opciones y el mapa de capacidades usado por los filtros.
//
// La tabla vive en specifications.yaml (embebido en el binario) y se interpreta una sola vez.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

//go:embed specifications.yaml
var embeddedSpecifications []byte

// SpecificationCatalog tabla inmutable de modelos predefinidos.
type SpecificationCatalog struct {
	models       []entity.PredefinedModel
	byID         map[string]int
	capabilities map[string]map[string]struct{}
	filterless   map[string]bool
}

var (
	defaultOnce    sync.Once
	defaultCatalog *SpecificationCatalog
)

// Default devuelve el catálogo embebido. Un YAML inválido es un error de compilación del
// catálogo, por eso entra en pánico.
func Default() *SpecificationCatalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedSpecifications)
		if err != nil {
			panic("catálogo de especificaciones embebido: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

type rawCatalog struct {
	FilterlessTypes []string   `yaml:"filterless_types"`
	Models          []rawModel `yaml:"models"`
}

type rawModel struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Code           string    `yaml:"code"`
	Name           string    `yaml:"name"`
	Description    string    `yaml:"description"`
	BasePrice      string    `yaml:"base_price"`
	Tags           []string  `yaml:"tags"`
	Specifications []rawSpec `yaml:"specifications"`
}

type rawSpec struct {
	Name    string      `yaml:"name"`
	Options []rawOption `yaml:"options"`
}

type rawOption struct {
	Value      string `yaml:"value"`
	Code       string `yaml:"code"`
	Label      string `yaml:"label"`
	PriceDelta string `yaml:"price_delta"`
}

// Parse interpreta y valida una tabla de catálogo en YAML.
func Parse(data []byte) (*SpecificationCatalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	c := &SpecificationCatalog{
		models:       make([]entity.PredefinedModel, 0, len(raw.Models)),
		byID:         make(map[string]int, len(raw.Models)),
		capabilities: make(map[string]map[string]struct{}, len(raw.Models)),
		filterless:   make(map[string]bool, len(raw.FilterlessTypes)),
	}
	for _, t := range raw.FilterlessTypes {
		c.filterless[t] = true
	}
	for _, rm := range raw.Models {
		m, err := rm.toModel()
		if err != nil {
			return nil, fmt.Errorf("modelo %q: %w", rm.ID, err)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("modelo %q duplicado", m.ID)
		}
		tags := make(map[string]struct{}, len(m.CapabilityTags))
		for _, t := range m.CapabilityTags {
			tags[t] = struct{}{}
		}
		c.byID[m.ID] = len(c.models)
		c.capabilities[m.ID] = tags
		c.models = append(c.models, m)
	}
	return c, nil
}

func (rm rawModel) toModel() (entity.PredefinedModel, error) {
	if rm.ID == "" || rm.Type == "" || rm.Code == "" {
		return entity.PredefinedModel{}, fmt.Errorf("id, type y code son obligatorios")
	}
	price, err := parseDecimal(rm.BasePrice)
	if err != nil {
		return entity.PredefinedModel{}, fmt.Errorf("base_price: %w", err)
	}
	name := rm.Name
	if name == "" {
		name = entity.BaseToken(rm.Code)
	}
	specs := make([]entity.Specification, 0, len(rm.Specifications))
	seenSpec := make(map[string]bool, len(rm.Specifications))
	for _, rs := range rm.Specifications {
		if rs.Name == "" {
			return entity.PredefinedModel{}, fmt.Errorf("especificación sin nombre")
		}
		if seenSpec[rs.Name] {
			return entity.PredefinedModel{}, fmt.Errorf("especificación %q duplicada", rs.Name)
		}
		seenSpec[rs.Name] = true
		spec := entity.Specification{Name: rs.Name, Options: make([]entity.SpecificationOption, 0, len(rs.Options))}
		seenValue := make(map[string]bool, len(rs.Options))
		for _, ro := range rs.Options {
			if seenValue[ro.Value] {
				return entity.PredefinedModel{}, fmt.Errorf("especificación %q: valor %q duplicado", rs.Name, ro.Value)
			}
			seenValue[ro.Value] = true
			delta, err := parseDecimal(ro.PriceDelta)
			if err != nil {
				return entity.PredefinedModel{}, fmt.Errorf("especificación %q: price_delta: %w", rs.Name, err)
			}
			spec.Options = append(spec.Options, entity.SpecificationOption{
				Value: ro.Value, Code: ro.Code, Label: ro.Label, PriceDelta: delta,
			})
		}
		specs = append(specs, spec)
	}
	return entity.PredefinedModel{
		ID:             rm.ID,
		TypeID:         rm.Type,
		Code:           rm.Code,
		DisplayName:    name,
		Description:    rm.Description,
		BasePrice:      price,
		Specifications: specs,
		CapabilityTags: append([]string(nil), rm.Tags...),
	}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// Models todos los modelos en orden de declaración.
func (c *SpecificationCatalog) Models() []entity.PredefinedModel {
	return append([]entity.PredefinedModel(nil), c.models...)
}

// Model busca un modelo por ID.
func (c *SpecificationCatalog) Model(id string) (entity.PredefinedModel, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.PredefinedModel{}, false
	}
	return c.models[i], true
}

// ModelsByType modelos del tipo en orden de declaración.
func (c *SpecificationCatalog) ModelsByType(typeID string) []entity.PredefinedModel {
	var out []entity.PredefinedModel
	for _, m := range c.models {
		if m.TypeID == typeID {
			out = append(out, m)
		}
	}
	return out
}

// HasCapability indica si el modelo declara la etiqueta. Un modelo ausente del mapa no tiene capacidades.
func (c *SpecificationCatalog) HasCapability(modelID, tag string) bool {
	_, ok := c.capabilities[modelID][tag]
	return ok
}

// FiltersApplicable false para los tipos que saltan el paso de filtros (nivel, flujo).
func (c *SpecificationCatalog) FiltersApplicable(typeID string) bool {
	return !c.filterless[typeID]
}

// StampTypes marca FiltersApplicable en cada tipo de las categorías dadas.
func (c *SpecificationCatalog) StampTypes(categories []entity.Category) []entity.Category {
	out := make([]entity.Category, len(categories))
	for i, cat := range categories {
		cat.Types = append([]entity.ProductType(nil), cat.Types...)
		for j := range cat.Types {
			cat.Types[j].FiltersApplicable = c.FiltersApplicable(cat.Types[j].ID)
		}
		out[i] = cat
	}
	return out
}
