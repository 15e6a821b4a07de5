// Package memory implementa el almacén de catálogo en memoria. Sirve para desarrollo sin
// PostgreSQL y como doble de prueba de los repositorios.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/configurador-api/internal/application/usecase"
	"github.com/jhoicas/configurador-api/internal/domain"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
	"github.com/jhoicas/configurador-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository      = (*CategoryRepository)(nil)
	_ repository.FilterRepository        = (*FilterRepository)(nil)
	_ repository.CustomProductRepository = (*CustomProductRepository)(nil)
	_ usecase.CatalogTxRunner            = (*Store)(nil)
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	categories []entity.Category
	filters    []entity.Filter
	products   []entity.CustomProduct
}

// NewStore crea el almacén con categorías (y sus tipos) y filtros iniciales.
// Los tipos reciben el CategoryID de su categoría.
func NewStore(categories []entity.Category, filters []entity.Filter) *Store {
	s := &Store{filters: append([]entity.Filter(nil), filters...)}
	for _, c := range categories {
		c.Types = append([]entity.ProductType(nil), c.Types...)
		for i := range c.Types {
			c.Types[i].CategoryID = c.ID
		}
		s.categories = append(s.categories, c)
	}
	return s
}

// Categories repositorio de categorías.
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }

// Filters repositorio de filtros.
func (s *Store) Filters() *FilterRepository { return &FilterRepository{s: s} }

// CustomProducts repositorio de productos personalizados.
func (s *Store) CustomProducts() *CustomProductRepository { return &CustomProductRepository{s: s} }

// RunCatalog ejecuta fn y, si falla, restaura filtros y productos al estado previo.
// No aísla de escrituras concurrentes de otras llamadas.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	filterRepo repository.FilterRepository,
	productRepo repository.CustomProductRepository,
) error) error {
	s.mu.RLock()
	filters := append([]entity.Filter(nil), s.filters...)
	products := make([]entity.CustomProduct, len(s.products))
	for i, p := range s.products {
		products[i] = cloneProduct(p)
	}
	s.mu.RUnlock()

	if err := fn(s.Filters(), s.CustomProducts()); err != nil {
		s.mu.Lock()
		s.filters, s.products = filters, products
		s.mu.Unlock()
		return err
	}
	return nil
}

// CategoryRepository implementa repository.CategoryRepository.
type CategoryRepository struct{ s *Store }

// List devuelve copias en el orden de alta.
func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Category, len(r.s.categories))
	for i, c := range r.s.categories {
		c.Types = append([]entity.ProductType(nil), c.Types...)
		out[i] = c
	}
	return out, nil
}

// GetType busca un tipo por ID. Retorna nil, nil si no existe.
func (r *CategoryRepository) GetType(ctx context.Context, typeID string) (*entity.ProductType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		for _, t := range c.Types {
			if t.ID == typeID {
				t := t
				return &t, nil
			}
		}
	}
	return nil, nil
}

// FilterRepository implementa repository.FilterRepository.
type FilterRepository struct{ s *Store }

func (r *FilterRepository) List(ctx context.Context) ([]entity.Filter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]entity.Filter(nil), r.s.filters...), nil
}

func (r *FilterRepository) GetByID(ctx context.Context, id string) (*entity.Filter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.filters {
		if f.ID == id {
			f := f
			return &f, nil
		}
	}
	return nil, nil
}

// Create rechaza IDs repetidos y nombres repetidos dentro del mismo tipo, como el índice de la DB.
func (r *FilterRepository) Create(ctx context.Context, filter *entity.Filter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.hasTypeLocked(filter.TypeID) {
		return domain.ErrNotFound
	}
	for _, f := range r.s.filters {
		if f.ID == filter.ID || (f.TypeID == filter.TypeID && f.Name == filter.Name) {
			return domain.ErrDuplicate
		}
	}
	r.s.filters = append(r.s.filters, *filter)
	return nil
}

// Delete solo borra filtros personalizados.
func (r *FilterRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, f := range r.s.filters {
		if f.ID == id && !f.Predefined {
			r.s.filters = append(r.s.filters[:i:i], r.s.filters[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// CustomProductRepository implementa repository.CustomProductRepository.
type CustomProductRepository struct{ s *Store }

func (r *CustomProductRepository) List(ctx context.Context) ([]entity.CustomProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.CustomProduct, len(r.s.products))
	for i, p := range r.s.products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

func (r *CustomProductRepository) GetByID(ctx context.Context, id string) (*entity.CustomProduct, error) {
	return r.find(func(p *entity.CustomProduct) bool { return p.ID == id }), nil
}

func (r *CustomProductRepository) GetByCode(ctx context.Context, code string) (*entity.CustomProduct, error) {
	return r.find(func(p *entity.CustomProduct) bool { return p.Code == code }), nil
}

func (r *CustomProductRepository) Create(ctx context.Context, product *entity.CustomProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == product.ID || p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.products = append(r.s.products, cloneProduct(*product))
	return nil
}

func (r *CustomProductRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *CustomProductRepository) RemoveFilter(ctx context.Context, filterID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		kept := make([]string, 0, len(r.s.products[i].FilterIDs))
		for _, id := range r.s.products[i].FilterIDs {
			if id != filterID {
				kept = append(kept, id)
			}
		}
		r.s.products[i].FilterIDs = kept
	}
	return nil
}

func (r *CustomProductRepository) find(match func(*entity.CustomProduct) bool) *entity.CustomProduct {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.products {
		if match(&r.s.products[i]) {
			p := cloneProduct(r.s.products[i])
			return &p
		}
	}
	return nil
}

func (s *Store) hasTypeLocked(typeID string) bool {
	for _, c := range s.categories {
		for _, t := range c.Types {
			if t.ID == typeID {
				return true
			}
		}
	}
	return false
}

func cloneProduct(p entity.CustomProduct) entity.CustomProduct {
	p.FilterIDs = append([]string(nil), p.FilterIDs...)
	specs := make([]entity.Specification, len(p.Specifications))
	for i, s := range p.Specifications {
		s.Options = append([]entity.SpecificationOption(nil), s.Options...)
		specs[i] = s
	}
	p.Specifications = specs
	return p
}
