package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/domain"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/configurator"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
	"github.com/jhoicas/configurador-api/internal/domain/repository"
)

var _ SnapshotSource = (*CatalogUseCase)(nil)

// CatalogUseCase lectura del catálogo externo (snapshots, candidatos) y mutaciones de
// administración que se delegan al almacén (filtros y productos personalizados).
type CatalogUseCase struct {
	specs      *catalog.SpecificationCatalog
	categories repository.CategoryRepository
	filters    repository.FilterRepository
	products   repository.CustomProductRepository
	tx         CatalogTxRunner
	now        func() time.Time
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	specs *catalog.SpecificationCatalog,
	categories repository.CategoryRepository,
	filters repository.FilterRepository,
	products repository.CustomProductRepository,
	tx CatalogTxRunner,
) *CatalogUseCase {
	return &CatalogUseCase{
		specs:      specs,
		categories: categories,
		filters:    filters,
		products:   products,
		tx:         tx,
		now:        time.Now,
	}
}

// Snapshot lee categorías, filtros y productos personalizados y los congela en un snapshot.
func (uc *CatalogUseCase) Snapshot(ctx context.Context) (*entity.CatalogSnapshot, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: categorías: %w", err)
	}
	filters, err := uc.filters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: filtros: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: productos: %w", err)
	}
	return entity.NewCatalogSnapshot(uc.now(), uc.specs.StampTypes(categories), filters, products), nil
}

// Candidates lista los modelos del tipo que cumplen todos los filtros, sobre un snapshot nuevo.
func (uc *CatalogUseCase) Candidates(ctx context.Context, typeID string, filterIDs []string) (*dto.CandidateListResponse, error) {
	snap, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.Type(typeID); !ok {
		return nil, domain.ErrNotFound
	}
	if filterIDs == nil {
		filterIDs = []string{}
	}
	models := configurator.NewMatcher(uc.specs, snap).ListCandidates(typeID, filterIDs)
	items := make([]dto.ModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, toModelResponse(m))
	}
	return &dto.CandidateListResponse{TypeID: typeID, ActiveFilterIDs: filterIDs, Items: items}, nil
}

// AddFilter crea un filtro personalizado. Los filtros predefinidos no se crean desde aquí.
func (uc *CatalogUseCase) AddFilter(ctx context.Context, in dto.CreateFilterRequest) (*dto.FilterResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.TypeID == "" {
		return nil, fmt.Errorf("%w: name y type_id son requeridos", domain.ErrInvalidInput)
	}
	t, err := uc.categories.GetType(ctx, in.TypeID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	filter := &entity.Filter{
		ID:        uuid.New().String(),
		Name:      name,
		TypeID:    in.TypeID,
		CreatedAt: uc.now(),
	}
	if err := uc.filters.Create(ctx, filter); err != nil {
		return nil, err
	}
	return toFilterResponse(filter), nil
}

// RemoveFilter elimina un filtro personalizado y lo desvincula de los productos en la misma transacción.
func (uc *CatalogUseCase) RemoveFilter(ctx context.Context, id string) error {
	return uc.tx.RunCatalog(ctx, func(filters repository.FilterRepository, products repository.CustomProductRepository) error {
		f, err := filters.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}
		if f.Predefined {
			return domain.ErrForbidden
		}
		if err := products.RemoveFilter(ctx, id); err != nil {
			return err
		}
		return filters.Delete(ctx, id)
	})
}

// CreateCustomProduct valida y persiste un producto personalizado con sus especificaciones.
func (uc *CatalogUseCase) CreateCustomProduct(ctx context.Context, in dto.CreateCustomProductRequest) (*dto.CustomProductResponse, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	if in.Code == "" || in.Name == "" || in.TypeID == "" {
		return nil, fmt.Errorf("%w: code, name y type_id son requeridos", domain.ErrInvalidInput)
	}
	if entity.BaseToken(in.Code) == "" {
		return nil, fmt.Errorf("%w: el código debe comenzar con el token base", domain.ErrInvalidInput)
	}
	if in.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: base_price no puede ser negativo", domain.ErrInvalidInput)
	}
	specs, err := specificationsFromDTO(in.Specifications)
	if err != nil {
		return nil, err
	}

	t, err := uc.categories.GetType(ctx, in.TypeID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID == "" {
		in.CategoryID = t.CategoryID
	}
	if in.CategoryID != t.CategoryID {
		return nil, fmt.Errorf("%w: el tipo %s no pertenece a la categoría %s", domain.ErrInvalidInput, t.ID, in.CategoryID)
	}

	filterIDs := make([]string, 0, len(in.FilterIDs))
	seen := make(map[string]bool, len(in.FilterIDs))
	for _, id := range in.FilterIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		f, err := uc.filters.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if f == nil || f.TypeID != in.TypeID {
			return nil, fmt.Errorf("%w: el filtro %s no existe para el tipo %s", domain.ErrInvalidInput, id, in.TypeID)
		}
		filterIDs = append(filterIDs, id)
	}

	existing, err := uc.products.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := uc.now()
	product := &entity.CustomProduct{
		ID:             uuid.New().String(),
		Code:           in.Code,
		TypeID:         in.TypeID,
		CategoryID:     in.CategoryID,
		Name:           in.Name,
		Description:    in.Description,
		BasePrice:      in.BasePrice,
		Specifications: specs,
		FilterIDs:      filterIDs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toCustomProductResponse(product), nil
}

// GetCustomProduct obtiene un producto personalizado por ID.
func (uc *CatalogUseCase) GetCustomProduct(ctx context.Context, id string) (*dto.CustomProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomProductResponse(p), nil
}

// DeleteCustomProduct elimina un producto personalizado.
func (uc *CatalogUseCase) DeleteCustomProduct(ctx context.Context, id string) error {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(ctx, id)
}

// specificationsFromDTO valida nombres únicos, valores únicos por especificación y códigos no vacíos.
func specificationsFromDTO(in []SpecificationInput) ([]entity.Specification, error) {
	specs := make([]entity.Specification, 0, len(in))
	names := make(map[string]bool, len(in))
	for _, s := range in {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: especificación sin nombre", domain.ErrInvalidInput)
		}
		if names[name] {
			return nil, fmt.Errorf("%w: especificación %q repetida", domain.ErrInvalidInput, name)
		}
		names[name] = true
		if len(s.Options) == 0 {
			return nil, fmt.Errorf("%w: la especificación %q no tiene opciones", domain.ErrInvalidInput, name)
		}
		spec := entity.Specification{Name: name, Options: make([]entity.SpecificationOption, 0, len(s.Options))}
		values := make(map[string]bool, len(s.Options))
		for _, o := range s.Options {
			if o.Value == "" || values[o.Value] {
				return nil, fmt.Errorf("%w: valor %q vacío o repetido en %q", domain.ErrInvalidInput, o.Value, name)
			}
			values[o.Value] = true
			if strings.TrimSpace(o.Code) == "" {
				return nil, fmt.Errorf("%w: la opción %q de %q no tiene código", domain.ErrInvalidInput, o.Value, name)
			}
			label := o.Label
			if label == "" {
				label = o.Value
			}
			spec.Options = append(spec.Options, entity.SpecificationOption{
				Value: o.Value, Code: strings.TrimSpace(o.Code), Label: label, PriceDelta: o.PriceDelta,
			})
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// SpecificationInput alias de la especificación recibida en la API.
type SpecificationInput = dto.SpecificationDTO
