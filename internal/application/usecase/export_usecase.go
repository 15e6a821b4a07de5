package usecase

import (
	"context"

	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/configurator"
)

// ExportUseCase volcado plano del catálogo completo para exportadores tabulares.
type ExportUseCase struct {
	specs  *catalog.SpecificationCatalog
	source SnapshotSource
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(specs *catalog.SpecificationCatalog, source SnapshotSource) *ExportUseCase {
	return &ExportUseCase{specs: specs, source: source}
}

// Rows lee un snapshot nuevo y lo proyecta a filas. typeID vacío exporta todos los tipos;
// un tipo desconocido produce un volcado vacío.
func (uc *ExportUseCase) Rows(ctx context.Context, typeID string) (*dto.ExportResponse, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows := configurator.ExportRows(uc.specs, snap, typeID)
	return &dto.ExportResponse{TypeID: typeID, Rows: toExportRows(rows)}, nil
}
