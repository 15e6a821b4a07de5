// Package pdf implementa la hoja técnica de una configuración finalizada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Modelo + tipo        │  Código de pedido + fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN                                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Especificación | Código | Opción                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIO                                                      │
//	│  FOOTER: QR del código + versión del catálogo                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/configurador-api/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.DatasheetGenerator = (*DatasheetGenerator)(nil)

// DatasheetGenerator implementa usecase.DatasheetGenerator usando Maroto v2.
type DatasheetGenerator struct {
	author string
}

// NewDatasheetGenerator construye el generador; author se graba en los metadatos del PDF.
func NewDatasheetGenerator(author string) *DatasheetGenerator {
	return &DatasheetGenerator{author: author}
}

// GenerateDatasheet genera el PDF y devuelve sus bytes.
func (g *DatasheetGenerator) GenerateDatasheet(_ context.Context, sheet usecase.Datasheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja técnica "+sheet.Code, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(descriptionRows(sheet)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(sheet.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(priceRow(sheet.Price))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sheet))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja técnica: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: modelo + tipo (izq) y código de pedido (der).
func headerRow(sheet usecase.Datasheet) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(sheet.ModelName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sheet.TypeName, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CÓDIGO DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sheet.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// descriptionRows: descripción generada partida en líneas y, si existe, el detalle del modelo.
func descriptionRows(sheet usecase.Datasheet) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DESCRIPCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, chunk := range splitEvery(sheet.Description, 110) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 8, Top: 0.5}),
		)))
	}
	if sheet.ModelDetail != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(sheet.ModelDetail, props.Text{Size: 7.5, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Especificación", 4, align.Left),
		h("Código", 2, align.Center),
		h("Opción", 6, align.Left),
	)
}

// tableRows: una fila por especificación elegida, en orden de declaración.
func tableRows(lines []usecase.DatasheetLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(l.Specification, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Code, props.Text{Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold})),
			col.New(6).Add(text.New(l.Label, props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return result
}

func priceRow(price decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("PRECIO DE LISTA:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatPrice(price), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRow: QR con el código de pedido + fecha del catálogo usado.
func footerRow(sheet usecase.Datasheet) core.Row {
	taken := "—"
	if !sheet.SnapshotTakenAt.IsZero() {
		taken = sheet.SnapshotTakenAt.Format("02/01/2006 15:04")
	}
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(sheet.Code, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Escanea el código QR para copiar el código de pedido.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Catálogo consultado: "+taken, props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatPrice dos decimales con puntos de miles y coma decimal. Ej: 1234.5 → "1.234,50".
func formatPrice(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}
	return sign + formatMoney(whole) + "," + frac
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// splitEvery divide s en trozos de max n bytes sin partir runas.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		cut := n
		for cut > 0 && !utf8RuneStart(s[cut]) {
			cut--
		}
		parts = append(parts, s[:cut])
		s = s[cut:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}

func utf8RuneStart(b byte) bool { return b&0xC0 != 0x80 }
