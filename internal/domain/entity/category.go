package entity

// Category agrupa tipos de producto (nivel superior del asistente).
type Category struct {
	ID    string
	Name  string
	Types []ProductType // en orden de presentación
}

// ProductType familia de productos dentro de una categoría (ej. sensores de temperatura/humedad).
// El ID es único en todo el catálogo: filtros y modelos lo referencian directamente.
type ProductType struct {
	ID         string
	CategoryID string
	Name       string
	// FiltersApplicable lo fija el catálogo de especificaciones al construir el snapshot;
	// si es false el asistente salta el paso de filtros.
	FiltersApplicable bool
}
