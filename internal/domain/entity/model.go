package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ModelKind distingue el origen de un modelo.
type ModelKind string

const (
	ModelPredefined ModelKind = "predefined"
	ModelCustom     ModelKind = "custom"
)

// ModelRef referencia a un modelo: Predefined(id) | Custom(id).
type ModelRef struct {
	Kind ModelKind
	ID   string
}

// PredefinedRef construye una referencia a un modelo del catálogo compilado.
func PredefinedRef(id string) ModelRef { return ModelRef{Kind: ModelPredefined, ID: id} }

// CustomRef construye una referencia a un producto personalizado.
func CustomRef(id string) ModelRef { return ModelRef{Kind: ModelCustom, ID: id} }

// IsZero indica si la referencia está vacía (sin modelo seleccionado).
func (r ModelRef) IsZero() bool { return r.Kind == "" && r.ID == "" }

// String forma "kind:id", usada en la API.
func (r ModelRef) String() string {
	if r.IsZero() {
		return ""
	}
	return string(r.Kind) + ":" + r.ID
}

// ParseModelRef interpreta "predefined:ID" o "custom:ID".
func ParseModelRef(s string) (ModelRef, error) {
	kind, id, ok := strings.Cut(s, ":")
	if !ok || id == "" {
		return ModelRef{}, fmt.Errorf("referencia de modelo inválida %q", s)
	}
	switch ModelKind(kind) {
	case ModelPredefined, ModelCustom:
		return ModelRef{Kind: ModelKind(kind), ID: id}, nil
	default:
		return ModelRef{}, fmt.Errorf("tipo de modelo desconocido %q", kind)
	}
}

// PredefinedModel entrada del catálogo compilado.
type PredefinedModel struct {
	ID             string
	TypeID         string
	Code           string // código de catálogo, ej. "TxTH52-XX"
	DisplayName    string
	Description    string
	BasePrice      decimal.Decimal
	Specifications []Specification
	CapabilityTags []string
}

// ResolvedModel forma común de un modelo, sea predefinido o personalizado.
type ResolvedModel struct {
	Ref            ModelRef
	TypeID         string
	BaseCode       string
	DisplayName    string
	Description    string
	BasePrice      decimal.Decimal
	Specifications []Specification
	Tags           []string
}

// Specification busca una especificación declarada por nombre.
func (m *ResolvedModel) Specification(name string) (Specification, bool) {
	for _, s := range m.Specifications {
		if s.Name == name {
			return s, true
		}
	}
	return Specification{}, false
}

// BaseToken primer segmento de un código delimitado por "-".
func BaseToken(code string) string {
	base, _, _ := strings.Cut(code, "-")
	return base
}
