package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectRequest cuerpo para selectCategory / selectType.
type SelectRequest struct {
	ID string `json:"id" validate:"required"`
}

// SelectModelRequest cuerpo para selectModel; Ref en forma "predefined:ID" o "custom:ID".
type SelectModelRequest struct {
	Ref string `json:"ref" validate:"required"`
}

// SetSpecificationRequest cuerpo para setSpecification.
type SetSpecificationRequest struct {
	Value string `json:"value" validate:"required"`
}

// CategoryOption categoría seleccionable.
type CategoryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TypeOption tipo seleccionable de la categoría actual.
type TypeOption struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	FiltersApplicable bool   `json:"filters_applicable"`
}

// FilterOption filtro del tipo actual con su estado.
type FilterOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Predefined bool   `json:"predefined"`
	Active     bool   `json:"active"`
}

// SpecificationView especificación del modelo actual con la opción elegida.
type SpecificationView struct {
	SpecificationDTO
	Selected string `json:"selected,omitempty"`
}

// SelectedOptionDTO opción resuelta en el resultado.
type SelectedOptionDTO struct {
	Specification string `json:"specification"`
	Value         string `json:"value"`
	Code          string `json:"code"`
	Label         string `json:"label"`
}

// GenerationResponse código, descripción y precio de una configuración completa.
type GenerationResponse struct {
	Model       string              `json:"model"`
	Code        string              `json:"code"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	Selections  []SelectedOptionDTO `json:"selections"`
}

// SessionResponse estado de una sesión del asistente más las opciones del paso actual.
type SessionResponse struct {
	ID              string              `json:"id"`
	Step            string              `json:"step"`
	CategoryID      string              `json:"category_id,omitempty"`
	TypeID          string              `json:"type_id,omitempty"`
	ActiveFilterIDs []string            `json:"active_filter_ids"`
	Model           string              `json:"model,omitempty"`
	SelectedSpecs   map[string]string   `json:"selected_specs"`
	SnapshotTakenAt time.Time           `json:"snapshot_taken_at"`
	Categories      []CategoryOption    `json:"categories,omitempty"`
	Types           []TypeOption        `json:"types,omitempty"`
	Filters         []FilterOption      `json:"filters,omitempty"`
	Candidates      []ModelResponse     `json:"candidates,omitempty"`
	Specifications  []SpecificationView `json:"specifications,omitempty"`
	Preview         string              `json:"preview,omitempty"`
	Result          *GenerationResponse `json:"result,omitempty"`
}
