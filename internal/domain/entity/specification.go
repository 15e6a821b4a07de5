package entity

import "github.com/shopspring/decimal"

// Specification eje de configuración (ej. "Output") con sus opciones en orden.
// El orden de las especificaciones de un modelo determina el orden de composición del código.
type Specification struct {
	Name    string                `json:"name"`
	Options []SpecificationOption `json:"options"`
}

// SpecificationOption valor seleccionable de una especificación.
// Value es la clave de selección; Code el fragmento que entra al código; Label el texto visible.
type SpecificationOption struct {
	Value      string          `json:"value"`
	Code       string          `json:"code"`
	Label      string          `json:"label"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

// Option busca una opción por valor.
func (s Specification) Option(value string) (SpecificationOption, bool) {
	for _, o := range s.Options {
		if o.Value == value {
			return o, true
		}
	}
	return SpecificationOption{}, false
}
