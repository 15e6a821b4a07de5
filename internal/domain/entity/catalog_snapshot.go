package entity

import "time"

// CatalogSnapshot lectura inmutable del almacén de catálogo (categorías, tipos, filtros y
// productos personalizados). Refrescar significa tomar un snapshot nuevo; nunca se modifica en sitio.
type CatalogSnapshot struct {
	takenAt    time.Time
	categories []Category
	filters    []Filter
	products   []CustomProduct

	categoryByID map[string]int
	typeByID     map[string]ProductType
	filterByID   map[string]int
	productByID  map[string]int
}

// NewCatalogSnapshot copia las entradas e indexa por ID. Las listas conservan el orden recibido.
func NewCatalogSnapshot(takenAt time.Time, categories []Category, filters []Filter, products []CustomProduct) *CatalogSnapshot {
	s := &CatalogSnapshot{
		takenAt:      takenAt,
		categories:   make([]Category, 0, len(categories)),
		filters:      append([]Filter(nil), filters...),
		products:     make([]CustomProduct, 0, len(products)),
		categoryByID: make(map[string]int, len(categories)),
		typeByID:     make(map[string]ProductType),
		filterByID:   make(map[string]int, len(filters)),
		productByID:  make(map[string]int, len(products)),
	}
	for _, c := range categories {
		c.Types = append([]ProductType(nil), c.Types...)
		for i := range c.Types {
			c.Types[i].CategoryID = c.ID
			s.typeByID[c.Types[i].ID] = c.Types[i]
		}
		s.categoryByID[c.ID] = len(s.categories)
		s.categories = append(s.categories, c)
	}
	for i, f := range s.filters {
		s.filterByID[f.ID] = i
	}
	for _, p := range products {
		p.Specifications = append([]Specification(nil), p.Specifications...)
		p.FilterIDs = append([]string(nil), p.FilterIDs...)
		s.productByID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s
}

// TakenAt momento en que se leyó el almacén.
func (s *CatalogSnapshot) TakenAt() time.Time { return s.takenAt }

// Categories devuelve las categorías en orden.
func (s *CatalogSnapshot) Categories() []Category {
	return append([]Category(nil), s.categories...)
}

// Category busca una categoría por ID.
func (s *CatalogSnapshot) Category(id string) (Category, bool) {
	i, ok := s.categoryByID[id]
	if !ok {
		return Category{}, false
	}
	return s.categories[i], true
}

// Type busca un tipo por ID en todo el catálogo.
func (s *CatalogSnapshot) Type(id string) (ProductType, bool) {
	t, ok := s.typeByID[id]
	return t, ok
}

// Types devuelve todos los tipos en orden de categoría y luego de tipo.
func (s *CatalogSnapshot) Types() []ProductType {
	var out []ProductType
	for _, c := range s.categories {
		out = append(out, c.Types...)
	}
	return out
}

// Filter busca un filtro por ID.
func (s *CatalogSnapshot) Filter(id string) (Filter, bool) {
	i, ok := s.filterByID[id]
	if !ok {
		return Filter{}, false
	}
	return s.filters[i], true
}

// FiltersByType filtros del tipo, en orden del snapshot.
func (s *CatalogSnapshot) FiltersByType(typeID string) []Filter {
	var out []Filter
	for _, f := range s.filters {
		if f.TypeID == typeID {
			out = append(out, f)
		}
	}
	return out
}

// CustomProduct busca un producto personalizado por ID.
func (s *CatalogSnapshot) CustomProduct(id string) (CustomProduct, bool) {
	i, ok := s.productByID[id]
	if !ok {
		return CustomProduct{}, false
	}
	return s.products[i], true
}

// CustomProducts devuelve todos los productos personalizados en orden del snapshot.
func (s *CatalogSnapshot) CustomProducts() []CustomProduct {
	return append([]CustomProduct(nil), s.products...)
}

// CustomProductsByType productos personalizados del tipo, en orden del snapshot.
func (s *CatalogSnapshot) CustomProductsByType(typeID string) []CustomProduct {
	var out []CustomProduct
	for _, p := range s.products {
		if p.TypeID == typeID {
			out = append(out, p)
		}
	}
	return out
}
