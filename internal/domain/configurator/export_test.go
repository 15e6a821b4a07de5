package configurator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/configurador-api/internal/domain/configurator"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

func TestExportRows_TodoElCatalogo(t *testing.T) {
	rows := configurator.ExportRows(testCatalog(t), testSnapshot(), "")

	codes := make([]string, 0, len(rows))
	for _, r := range rows {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []string{"TxTH52-XX", "TxTH60-XX-XX", "TxLV-XX", "CTH1-XX", "CTH2-XX", "BAD-XX"}, codes)
	assert.Equal(t, "Temperatura y humedad", rows[0].TypeName)
	assert.Equal(t, "Termostatos", rows[5].TypeName)
	assert.True(t, rows[3].Custom)
	assert.False(t, rows[0].Custom)
}

func TestExportRows_PorTipo(t *testing.T) {
	rows := configurator.ExportRows(testCatalog(t), testSnapshot(), "level")
	require.Len(t, rows, 1)
	assert.Equal(t, "TxLV", rows[0].Name)
	assert.Equal(t, "Nivel", rows[0].TypeName)
	assert.Equal(t, "Cable: C5=5 m", rows[0].SpecsText)
}

// TestExportRows_NoAplicaFiltros: la exportación es un volcado completo, sin filtros de etiquetas.
func TestExportRows_NoAplicaFiltros(t *testing.T) {
	rows := configurator.ExportRows(testCatalog(t), testSnapshot(), "temp-humid")
	assert.Len(t, rows, 4)
}

func TestExportRows_TipoNoDeclaradoUsaID(t *testing.T) {
	snap := entity.NewCatalogSnapshot(testSnapshot().TakenAt(), nil, nil, nil)
	rows := configurator.ExportRows(testCatalog(t), snap, "")
	require.Len(t, rows, 3)
	assert.Equal(t, "temp-humid", rows[0].TypeName)
}

func TestSpecsText_TodasLasOpciones(t *testing.T) {
	specs := []entity.Specification{
		{Name: "Output", Options: []entity.SpecificationOption{
			{Value: "V10", Code: "V10", Label: "0-10VDC"},
			{Value: "A", Code: "A", Label: "4-20mA"},
		}},
		{Name: "Range", Options: []entity.SpecificationOption{{Value: "T1", Code: "T1", Label: "0-50°C"}}},
	}
	assert.Equal(t, "Output: V10=0-10VDC, A=4-20mA | Range: T1=0-50°C", configurator.SpecsText(specs))
}
