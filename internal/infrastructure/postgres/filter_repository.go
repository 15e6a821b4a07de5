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

var _ repository.FilterRepository = (*FilterRepo)(nil)

// FilterRepo implementación del puerto FilterRepository sobre PostgreSQL (usable con pool o tx).
type FilterRepo struct {
	q Querier
}

// NewFilterRepository construye el adaptador de persistencia para filtros.
func NewFilterRepository(q Querier) *FilterRepo {
	return &FilterRepo{q: q}
}

// List lista todos los filtros: primero los predefinidos, luego por fecha de creación.
func (r *FilterRepo) List(ctx context.Context) ([]entity.Filter, error) {
	query := `
		SELECT id, name, type_id, predefined, created_at
		FROM filters ORDER BY type_id, predefined DESC, created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	defer rows.Close()
	var list []entity.Filter
	for rows.Next() {
		var f entity.Filter
		if err := rows.Scan(&f.ID, &f.Name, &f.TypeID, &f.Predefined, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan filter: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// GetByID obtiene un filtro por ID.
func (r *FilterRepo) GetByID(ctx context.Context, id string) (*entity.Filter, error) {
	var f entity.Filter
	err := r.q.QueryRow(ctx,
		`SELECT id, name, type_id, predefined, created_at FROM filters WHERE id = $1`, id,
	).Scan(&f.ID, &f.Name, &f.TypeID, &f.Predefined, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get filter: %w", err)
	}
	return &f, nil
}

// Create persiste un filtro personalizado.
func (r *FilterRepo) Create(ctx context.Context, filter *entity.Filter) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO filters (id, name, type_id, predefined, created_at) VALUES ($1, $2, $3, $4, $5)`,
		filter.ID, filter.Name, filter.TypeID, filter.Predefined, filter.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert filter: %w", err)
	}
	return nil
}

// Delete elimina un filtro no predefinido. Los predefinidos nunca se borran desde aquí.
func (r *FilterRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM filters WHERE id = $1 AND NOT predefined`, id)
	if err != nil {
		return fmt.Errorf("delete filter: %w", err)
	}
	return nil
}
