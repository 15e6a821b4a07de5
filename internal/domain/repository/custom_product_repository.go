package repository

import (
	"context"

	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

// CustomProductRepository define el puerto de persistencia para CustomProduct (DIP).
// Las especificaciones se guardan con el producto, en el orden en que se cargaron.
type CustomProductRepository interface {
	List(ctx context.Context) ([]entity.CustomProduct, error)
	GetByID(ctx context.Context, id string) (*entity.CustomProduct, error)
	GetByCode(ctx context.Context, code string) (*entity.CustomProduct, error)
	Create(ctx context.Context, product *entity.CustomProduct) error
	Delete(ctx context.Context, id string) error
	// RemoveFilter quita el filtro de todos los productos que lo referencian.
	RemoveFilter(ctx context.Context, filterID string) error
}
