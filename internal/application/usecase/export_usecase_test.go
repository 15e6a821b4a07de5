package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/configurador-api/internal/application/usecase"
)

func TestExportRows_TodosLosTipos(t *testing.T) {
	s := newStore()
	cat := newCatalogUseCase(t, s)
	ctx := context.Background()
	_, err := cat.CreateCustomProduct(ctx, validProduct())
	require.NoError(t, err)

	uc := usecase.NewExportUseCase(testCatalog(t), cat)
	resp, err := uc.Rows(ctx, "")
	require.NoError(t, err)

	codes := make([]string, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []string{"TxTH52-XX", "TxLV-XX", "CTH1-XX"}, codes)
	assert.Equal(t, "Temperatura y humedad", resp.Rows[0].TypeName)
	assert.Equal(t, "Output: V10=0-10VDC, A=4-20mA", resp.Rows[0].SpecsText)
	assert.True(t, resp.Rows[2].Custom)
}

func TestExportRows_PorTipo(t *testing.T) {
	cat := newCatalogUseCase(t, newStore())
	uc := usecase.NewExportUseCase(testCatalog(t), cat)

	resp, err := uc.Rows(context.Background(), "level")
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "TxLV-XX", resp.Rows[0].Code)
	assert.Equal(t, "level", resp.TypeID)

	resp, err = uc.Rows(context.Background(), "desconocido")
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
}
