package configurator_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y snapshot de prueba
// ──────────────────────────────────────────────────────────────────────────────

const testCatalogYAML = `
filterless_types: [level]
models:
  - id: txth52
    type: temp-humid
    code: TxTH52-XX
    name: TxTH52
    base_price: "100.00"
    tags: [indoor]
    specifications:
      - name: Output
        options:
          - {value: V10, code: V10, label: 0-10VDC}
          - {value: A, code: A, label: 4-20mA, price_delta: "5.50"}
  - id: txth60
    type: temp-humid
    code: TxTH60-XX-XX
    name: TxTH60
    tags: [duct, display]
    specifications:
      - name: Output
        options:
          - {value: V10, code: V10, label: 0-10VDC}
          - {value: A, code: A, label: 4-20mA}
      - name: Range
        options:
          - {value: T1, code: T1, label: "0-50°C"}
          - {value: T2, code: T2, label: "-20-80°C"}
      - name: Display
        options:
          - {value: N, code: N, label: Sin display}
          - {value: D, code: D, label: LCD}
  - id: txlv
    type: level
    code: TxLV-XX
    name: TxLV
    specifications:
      - name: Cable
        options:
          - {value: C5, code: C5, label: 5 m}
`

func testCatalog(t *testing.T) *catalog.SpecificationCatalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)
	return c
}

func testCategories() []entity.Category {
	return []entity.Category{
		{ID: "sensors", Name: "Sensores", Types: []entity.ProductType{
			{ID: "temp-humid", Name: "Temperatura y humedad"},
			{ID: "level", Name: "Nivel"},
		}},
		{ID: "controllers", Name: "Controladores", Types: []entity.ProductType{
			{ID: "thermostat", Name: "Termostatos"},
		}},
	}
}

func testFilters() []entity.Filter {
	return []entity.Filter{
		{ID: "indoor", Name: "Interior", TypeID: "temp-humid", Predefined: true},
		{ID: "duct", Name: "Ducto", TypeID: "temp-humid", Predefined: true},
		{ID: "display", Name: "Display", TypeID: "temp-humid", Predefined: true},
		{ID: "co2", Name: "CO2", TypeID: "temp-humid"},
	}
}

func testProducts() []entity.CustomProduct {
	return []entity.CustomProduct{
		{
			ID: "cp-1", Code: "CTH1-XX", TypeID: "temp-humid", CategoryID: "sensors", Name: "CTH1",
			FilterIDs: []string{"indoor"},
			Specifications: []entity.Specification{{Name: "Output", Options: []entity.SpecificationOption{
				{Value: "A", Code: "A", Label: "4-20mA"},
			}}},
		},
		{
			ID: "cp-2", Code: "CTH2-XX", TypeID: "temp-humid", CategoryID: "sensors", Name: "CTH2",
			BasePrice: decimal.NewFromInt(40),
			FilterIDs: []string{"indoor", "co2"},
			Specifications: []entity.Specification{
				{Name: "Mount", Options: []entity.SpecificationOption{
					{Value: "wall", Code: "W", Label: "Pared", PriceDelta: decimal.NewFromInt(3)},
					{Value: "duct", Code: "D", Label: "Ducto"},
				}},
				{Name: "Output", Options: []entity.SpecificationOption{
					{Value: "A", Code: "A", Label: "4-20mA"},
				}},
			},
		},
		{
			ID: "cp-bad", Code: "BAD-XX", TypeID: "thermostat", CategoryID: "controllers", Name: "BAD",
			Specifications: []entity.Specification{{Name: "Relay", Options: []entity.SpecificationOption{
				{Value: "R1", Code: "", Label: "1 relé"},
			}}},
		},
	}
}

func testSnapshot() *entity.CatalogSnapshot {
	return entity.NewCatalogSnapshot(time.Unix(0, 0), testCategories(), testFilters(), testProducts())
}
