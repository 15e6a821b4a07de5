package http

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/application/usecase"
	"github.com/jhoicas/configurador-api/internal/infrastructure/csvexport"
)

// CatalogHandler lectura del catálogo: candidatos y volcado (público).
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
	export  *usecase.ExportUseCase
	csv     *csvexport.Writer
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase, export *usecase.ExportUseCase, csv *csvexport.Writer) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, export: export, csv: csv}
}

// Candidates godoc
// @Summary      Modelos candidatos de un tipo
// @Description  Intersección (AND) de los filtros indicados; sin filtros devuelve todos los modelos del tipo.
// @Tags         catalog
// @Produce      json
// @Param        type_id  query  string  true   "Tipo de producto"
// @Param        filter   query  []string  false  "Filtros activos (repetible o separados por coma)"
// @Success      200  {object}  dto.CandidateListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/candidates [get]
func (h *CatalogHandler) Candidates(c *fiber.Ctx) error {
	typeID := c.Query("type_id")
	if typeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TYPE", Message: "type_id es requerido"})
	}
	out, err := h.catalog.Candidates(c.UserContext(), typeID, queryList(c, "filter"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Volcado del catálogo
// @Tags         catalog
// @Produce      json
// @Produce      text/csv
// @Param        type_id  query  string  false  "Restringe a un tipo"
// @Param        format   query  string  false  "json (por defecto) o csv"
// @Success      200  {object}  dto.ExportResponse
// @Router       /api/catalog/export [get]
func (h *CatalogHandler) Export(c *fiber.Ctx) error {
	out, err := h.export.Rows(c.UserContext(), c.Query("type_id"))
	if err != nil {
		return writeError(c, err)
	}
	switch strings.ToLower(c.Query("format", "json")) {
	case "json":
		return c.JSON(out)
	case "csv":
		var buf bytes.Buffer
		if err := h.csv.Write(&buf, out.Rows); err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, h.csv.ContentType())
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalog.csv"`)
		return c.Send(buf.Bytes())
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser json o csv"})
	}
}

// queryList une los valores repetidos de un parámetro y separa los que vienen con comas.
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
