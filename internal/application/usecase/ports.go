package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/configurador-api/internal/domain/entity"
	"github.com/jhoicas/configurador-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn dentro de una transacción con repositorios de catálogo atados a ella.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		filterRepo repository.FilterRepository,
		productRepo repository.CustomProductRepository,
	) error) error
}

// SnapshotSource entrega un snapshot inmutable del catálogo externo.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*entity.CatalogSnapshot, error)
}

// Datasheet datos de la hoja técnica de una configuración finalizada.
type Datasheet struct {
	Code            string
	Description     string
	ModelName       string
	ModelDetail     string
	TypeName        string
	Price           decimal.Decimal
	Lines           []DatasheetLine
	SnapshotTakenAt time.Time
}

// DatasheetLine especificación elegida.
type DatasheetLine struct {
	Specification string
	Code          string
	Label         string
}

// DatasheetGenerator genera la representación PDF de una configuración.
type DatasheetGenerator interface {
	GenerateDatasheet(ctx context.Context, sheet Datasheet) ([]byte, error)
}
