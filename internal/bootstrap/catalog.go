// Package bootstrap arma el caso de uso de catálogo sobre el almacén configurado.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/configurador-api/internal/application/usecase"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/infrastructure/memory"
	"github.com/jhoicas/configurador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/configurador-api/pkg/config"
)

// CatalogUseCase devuelve el caso de uso de catálogo y la función que libera el almacén.
// Con CATALOG_STORE=memory usa la semilla embebida; si no, PostgreSQL.
func CatalogUseCase(ctx context.Context, cfg *config.Config, specs *catalog.SpecificationCatalog) (*usecase.CatalogUseCase, func(), error) {
	if cfg.App.Store == "memory" {
		store, err := memory.NewSeededStore()
		if err != nil {
			return nil, nil, fmt.Errorf("semilla en memoria: %w", err)
		}
		uc := usecase.NewCatalogUseCase(specs, store.Categories(), store.Filters(), store.CustomProducts(), store)
		return uc, func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	uc := usecase.NewCatalogUseCase(
		specs,
		postgres.NewCategoryRepository(pool),
		postgres.NewFilterRepository(pool),
		postgres.NewCustomProductRepository(pool),
		postgres.NewTxRunner(pool),
	)
	return uc, pool.Close, nil
}
