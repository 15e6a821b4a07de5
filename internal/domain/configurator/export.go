package configurator

import (
	"strings"

	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

// ExportRow fila de la vista de exportación del catálogo completo.
type ExportRow struct {
	Code        string
	Name        string
	TypeName    string
	Description string
	SpecsText   string
	Custom      bool
}

// ExportRows proyecta el catálogo a filas planas. Con typeID vacío recorre los modelos
// predefinidos de todos los tipos y luego todos los productos personalizados; con typeID
// restringe ambos a ese tipo. No aplica filtros de etiquetas.
func ExportRows(cat *catalog.SpecificationCatalog, snap *entity.CatalogSnapshot, typeID string) []ExportRow {
	typeName := func(id string) string {
		if t, ok := snap.Type(id); ok && t.Name != "" {
			return t.Name
		}
		return id
	}

	var rows []ExportRow
	if typeID != "" {
		for _, m := range cat.ModelsByType(typeID) {
			rows = append(rows, predefinedRow(m, typeName(m.TypeID)))
		}
		for _, p := range snap.CustomProductsByType(typeID) {
			rows = append(rows, customRow(p, typeName(p.TypeID)))
		}
		return rows
	}

	seen := make(map[string]bool)
	for _, t := range snap.Types() {
		seen[t.ID] = true
		for _, m := range cat.ModelsByType(t.ID) {
			rows = append(rows, predefinedRow(m, typeName(m.TypeID)))
		}
	}
	// Modelos de tipos que el almacén todavía no declara.
	for _, m := range cat.Models() {
		if !seen[m.TypeID] {
			rows = append(rows, predefinedRow(m, typeName(m.TypeID)))
		}
	}
	for _, p := range snap.CustomProducts() {
		rows = append(rows, customRow(p, typeName(p.TypeID)))
	}
	return rows
}

func predefinedRow(m entity.PredefinedModel, typeName string) ExportRow {
	return ExportRow{
		Code:        m.Code,
		Name:        m.DisplayName,
		TypeName:    typeName,
		Description: m.Description,
		SpecsText:   SpecsText(m.Specifications),
	}
}

func customRow(p entity.CustomProduct, typeName string) ExportRow {
	return ExportRow{
		Code:        p.Code,
		Name:        p.Name,
		TypeName:    typeName,
		Description: p.Description,
		SpecsText:   SpecsText(p.Specifications),
		Custom:      true,
	}
}

// SpecsText una línea con todas las opciones: "Output: V10=0-10VDC, A=4-20mA | Range: ...".
func SpecsText(specs []entity.Specification) string {
	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		opts := make([]string, 0, len(spec.Options))
		for _, o := range spec.Options {
			opts = append(opts, o.Code+"="+o.Label)
		}
		parts = append(parts, spec.Name+": "+strings.Join(opts, ", "))
	}
	return strings.Join(parts, descriptionSeparator)
}
