package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/configurador-api/internal/domain/entity"
	"github.com/jhoicas/configurador-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List lee categorías y tipos en una sola consulta, respetando el orden de presentación.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	query := `
		SELECT c.id, c.name, t.id, t.name
		FROM categories c
		LEFT JOIN product_types t ON t.category_id = c.id
		ORDER BY c.position, c.name, t.position, t.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []entity.Category
	for rows.Next() {
		var catID, catName string
		var typeID, typeName *string
		if err := rows.Scan(&catID, &catName, &typeID, &typeName); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if len(list) == 0 || list[len(list)-1].ID != catID {
			list = append(list, entity.Category{ID: catID, Name: catName})
		}
		if typeID != nil {
			cur := &list[len(list)-1]
			cur.Types = append(cur.Types, entity.ProductType{ID: *typeID, CategoryID: catID, Name: deref(typeName)})
		}
	}
	return list, rows.Err()
}

// GetType obtiene un tipo por ID.
func (r *CategoryRepo) GetType(ctx context.Context, typeID string) (*entity.ProductType, error) {
	var t entity.ProductType
	err := r.q.QueryRow(ctx,
		`SELECT id, category_id, name FROM product_types WHERE id = $1`, typeID,
	).Scan(&t.ID, &t.CategoryID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return &t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
