package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
	"github.com/jhoicas/configurador-api/internal/domain/repository"
	"github.com/jhoicas/configurador-api/internal/infrastructure/memory"
)

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

func newStore() *memory.Store {
	return memory.NewStore(
		[]entity.Category{
			{ID: "sensors", Name: "Sensores", Types: []entity.ProductType{
				{ID: "temp-humid", Name: "Temperatura y humedad"},
				{ID: "level", Name: "Nivel"},
			}},
		},
		[]entity.Filter{
			{ID: "indoor", Name: "Interior", TypeID: "temp-humid", Predefined: true},
		},
	)
}

// failingCategories simula un almacén caído en la lectura de categorías.
type failingCategories struct {
	repository.CategoryRepository
	err error
}

func (f failingCategories) List(ctx context.Context) ([]entity.Category, error) {
	return nil, f.err
}

var errStore = errors.New("almacén no disponible")
