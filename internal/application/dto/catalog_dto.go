package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFilterRequest entrada para crear un filtro personalizado (nunca predefinido).
type CreateFilterRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	TypeID string `json:"type_id" validate:"required"`
}

// FilterResponse salida de un filtro.
type FilterResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TypeID     string    `json:"type_id"`
	Predefined bool      `json:"predefined"`
	CreatedAt  time.Time `json:"created_at"`
}

// SpecificationOptionDTO opción de una especificación.
type SpecificationOptionDTO struct {
	Value      string          `json:"value"`
	Code       string          `json:"code"`
	Label      string          `json:"label"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

// SpecificationDTO especificación con sus opciones en orden.
type SpecificationDTO struct {
	Name    string                   `json:"name"`
	Options []SpecificationOptionDTO `json:"options"`
}

// CreateCustomProductRequest entrada para dar de alta un producto personalizado.
type CreateCustomProductRequest struct {
	Code           string             `json:"code" validate:"required,min=1,max=100"`
	TypeID         string             `json:"type_id" validate:"required"`
	CategoryID     string             `json:"category_id"`
	Name           string             `json:"name" validate:"required,min=1,max=200"`
	Description    string             `json:"description"`
	BasePrice      decimal.Decimal    `json:"base_price"`
	Specifications []SpecificationDTO `json:"specifications"`
	FilterIDs      []string           `json:"filter_ids"`
}

// CustomProductResponse salida de un producto personalizado.
type CustomProductResponse struct {
	ID             string             `json:"id"`
	Code           string             `json:"code"`
	TypeID         string             `json:"type_id"`
	CategoryID     string             `json:"category_id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	BasePrice      decimal.Decimal    `json:"base_price"`
	Specifications []SpecificationDTO `json:"specifications"`
	FilterIDs      []string           `json:"filter_ids"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ModelResponse candidato (modelo predefinido o producto personalizado) en forma común.
type ModelResponse struct {
	Ref            string             `json:"ref"`
	Kind           string             `json:"kind"`
	TypeID         string             `json:"type_id"`
	BaseCode       string             `json:"base_code"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	BasePrice      decimal.Decimal    `json:"base_price"`
	Specifications []SpecificationDTO `json:"specifications"`
	Tags           []string           `json:"tags"`
}

// CandidateListResponse candidatos para un tipo y un conjunto de filtros.
type CandidateListResponse struct {
	TypeID          string          `json:"type_id"`
	ActiveFilterIDs []string        `json:"active_filter_ids"`
	Items           []ModelResponse `json:"items"`
}

// ExportRow fila plana del volcado del catálogo.
type ExportRow struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	TypeName    string `json:"type_name"`
	Description string `json:"description"`
	SpecsText   string `json:"specs_text"`
	Custom      bool   `json:"custom"`
}

// ExportResponse volcado del catálogo (opcionalmente restringido a un tipo).
type ExportResponse struct {
	TypeID string      `json:"type_id,omitempty"`
	Rows   []ExportRow `json:"rows"`
}
