package repository

import (
	"context"

	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

// FilterRepository define el puerto de persistencia para Filter (DIP).
type FilterRepository interface {
	List(ctx context.Context) ([]entity.Filter, error)
	GetByID(ctx context.Context, id string) (*entity.Filter, error)
	Create(ctx context.Context, filter *entity.Filter) error
	Delete(ctx context.Context, id string) error
}
