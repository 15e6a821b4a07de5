// Package csvexport serializa el volcado del catálogo a CSV para hojas de cálculo.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/configurador-api/internal/application/dto"
)

// Codificaciones soportadas.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

var header = []string{"code", "name", "type", "description", "specifications", "custom"}

// Writer escribe filas de exportación como CSV en la codificación configurada.
type Writer struct {
	encoding string
	comma    rune
}

// NewWriter valida la codificación. Windows-1252 usa ';' como separador, que es lo que
// espera Excel en configuraciones regionales con coma decimal.
func NewWriter(enc string) (*Writer, error) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", EncodingUTF8, "utf8":
		return &Writer{encoding: EncodingUTF8, comma: ','}, nil
	case EncodingWindows1252, "cp1252":
		return &Writer{encoding: EncodingWindows1252, comma: ';'}, nil
	default:
		return nil, fmt.Errorf("csvexport: codificación no soportada %q", enc)
	}
}

// Encoding codificación efectiva.
func (w *Writer) Encoding() string { return w.encoding }

// ContentType valor para la cabecera HTTP Content-Type.
func (w *Writer) ContentType() string {
	return "text/csv; charset=" + w.encoding
}

// Write escribe la cabecera y una línea por fila. Los caracteres que Windows-1252 no
// representa se reemplazan en lugar de fallar.
func (w *Writer) Write(out io.Writer, rows []dto.ExportRow) (err error) {
	dst := out
	if w.encoding == EncodingWindows1252 {
		tw := transform.NewWriter(out, encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()))
		defer func() {
			if cerr := tw.Close(); err == nil {
				err = cerr
			}
		}()
		dst = tw
	}

	cw := csv.NewWriter(dst)
	cw.Comma = w.comma
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvexport: cabecera: %w", err)
	}
	for _, r := range rows {
		rec := []string{r.Code, r.Name, r.TypeName, r.Description, r.SpecsText, strconv.FormatBool(r.Custom)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csvexport: fila %s: %w", r.Code, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvexport: %w", err)
	}
	return nil
}
