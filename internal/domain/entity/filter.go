package entity

import "time"

// Filter etiqueta asociada a un único tipo de producto, usada para acotar modelos.
// Los filtros predefinidos son inmutables: el ID coincide con una etiqueta de capacidad del catálogo.
type Filter struct {
	ID         string
	Name       string
	TypeID     string
	Predefined bool
	CreatedAt  time.Time
}
