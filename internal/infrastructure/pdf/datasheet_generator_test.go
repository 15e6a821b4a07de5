package pdf_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/configurador-api/internal/application/usecase"
	"github.com/jhoicas/configurador-api/internal/infrastructure/pdf"
)

func TestGenerateDatasheet_ProducePDF(t *testing.T) {
	g := pdf.NewDatasheetGenerator("configurador")
	sheet := usecase.Datasheet{
		Code:            "TxTH60-A-T1-D",
		Description:     "TxTH60 with output: 4-20mA | range: 0-50°C | display: LCD " + strings.Repeat("x", 200),
		ModelName:       "TxTH60",
		TypeName:        "Temperatura y humedad",
		Price:           decimal.RequireFromString("1234.5"),
		SnapshotTakenAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Lines: []usecase.DatasheetLine{
			{Specification: "Output", Code: "A", Label: "4-20mA"},
			{Specification: "Range", Code: "T1", Label: "0-50°C"},
		},
	}

	out, err := g.GenerateDatasheet(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
