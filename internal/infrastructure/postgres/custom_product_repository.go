package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/configurador-api/internal/domain"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
	"github.com/jhoicas/configurador-api/internal/domain/repository"
)

var _ repository.CustomProductRepository = (*CustomProductRepo)(nil)

const customProductColumns = `id, code, type_id, category_id, name, description, base_price, specifications, filter_ids, created_at, updated_at`

// CustomProductRepo implementación del puerto CustomProductRepository sobre PostgreSQL (usable con pool o tx).
// specifications es JSONB (conserva el orden del arreglo) y filter_ids es TEXT[].
type CustomProductRepo struct {
	q Querier
}

// NewCustomProductRepository construye el adaptador de persistencia para productos personalizados.
func NewCustomProductRepository(q Querier) *CustomProductRepo {
	return &CustomProductRepo{q: q}
}

// Create persiste un nuevo producto personalizado.
func (r *CustomProductRepo) Create(ctx context.Context, p *entity.CustomProduct) error {
	specs := p.Specifications
	if specs == nil {
		specs = []entity.Specification{}
	}
	filterIDs := p.FilterIDs
	if filterIDs == nil {
		filterIDs = []string{}
	}
	query := `
		INSERT INTO custom_products (` + customProductColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Code, p.TypeID, p.CategoryID, p.Name, p.Description, p.BasePrice,
		specs, filterIDs, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert custom product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *CustomProductRepo) GetByID(ctx context.Context, id string) (*entity.CustomProduct, error) {
	return r.getOne(ctx, `SELECT `+customProductColumns+` FROM custom_products WHERE id = $1`, id)
}

// GetByCode obtiene un producto por código.
func (r *CustomProductRepo) GetByCode(ctx context.Context, code string) (*entity.CustomProduct, error) {
	return r.getOne(ctx, `SELECT `+customProductColumns+` FROM custom_products WHERE code = $1`, code)
}

func (r *CustomProductRepo) getOne(ctx context.Context, query, arg string) (*entity.CustomProduct, error) {
	p, err := scanCustomProduct(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get custom product: %w", err)
	}
	return p, nil
}

// List lista todos los productos personalizados en orden de alta.
func (r *CustomProductRepo) List(ctx context.Context) ([]entity.CustomProduct, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customProductColumns+` FROM custom_products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list custom products: %w", err)
	}
	defer rows.Close()
	var list []entity.CustomProduct
	for rows.Next() {
		p, err := scanCustomProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan custom product: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *CustomProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM custom_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete custom product: %w", err)
	}
	return nil
}

// RemoveFilter quita filterID del arreglo filter_ids de cada producto.
func (r *CustomProductRepo) RemoveFilter(ctx context.Context, filterID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE custom_products SET filter_ids = array_remove(filter_ids, $1), updated_at = now()
		 WHERE $1 = ANY(filter_ids)`, filterID,
	)
	if err != nil {
		return fmt.Errorf("remove filter from custom products: %w", err)
	}
	return nil
}

func scanCustomProduct(row pgx.Row) (*entity.CustomProduct, error) {
	var p entity.CustomProduct
	err := row.Scan(
		&p.ID, &p.Code, &p.TypeID, &p.CategoryID, &p.Name, &p.Description, &p.BasePrice,
		&p.Specifications, &p.FilterIDs, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
