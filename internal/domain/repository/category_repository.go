package repository

import (
	"context"

	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura de categorías con sus tipos (DIP).
type CategoryRepository interface {
	// List devuelve las categorías en orden de presentación, cada una con sus tipos ordenados.
	List(ctx context.Context) ([]entity.Category, error)
	GetType(ctx context.Context, typeID string) (*entity.ProductType, error)
}
