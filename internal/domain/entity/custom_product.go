package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomProduct producto cargado por un administrador; sus especificaciones se definen
// al momento de la carga y se guardan con el registro (no están compiladas).
type CustomProduct struct {
	ID             string
	Code           string // código completo; el primer segmento antes de "-" es el token base
	TypeID         string
	CategoryID     string
	Name           string
	Description    string
	BasePrice      decimal.Decimal
	Specifications []Specification
	FilterIDs      []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasFilter indica si el producto está etiquetado con el filtro.
func (p *CustomProduct) HasFilter(id string) bool {
	for _, f := range p.FilterIDs {
		if f == id {
			return true
		}
	}
	return false
}
