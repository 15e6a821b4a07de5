package configurator

import (
	"sort"

	"github.com/jhoicas/configurador-api/internal/domain"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

// Step paso del asistente.
type Step string

const (
	StepCategorySelect Step = "CategorySelect"
	StepTypeSelect     Step = "TypeSelect"
	StepFilterSelect   Step = "FilterSelect"
	StepModelSelect    Step = "ModelSelect"
	StepSpecSelect     Step = "SpecSelect"
	StepComplete       Step = "Complete"
)

var stepOrder = map[Step]int{
	StepCategorySelect: 0,
	StepTypeSelect:     1,
	StepFilterSelect:   2,
	StepModelSelect:    3,
	StepSpecSelect:     4,
	StepComplete:       5,
}

// State copia de solo lectura del estado de una sesión.
type State struct {
	Step            Step
	CategoryID      string
	TypeID          string
	ActiveFilterIDs []string // ordenados
	Model           entity.ModelRef
	SelectedSpecs   map[string]string
	Result          *Result // solo en Complete
}

// Session máquina de estados del asistente:
// CategorySelect → TypeSelect → FilterSelect → ModelSelect → SpecSelect → Complete.
// Una operación inválida devuelve *domain.ValidationError y no modifica el estado.
// No es segura para uso concurrente; la posee un único llamador.
type Session struct {
	catalog  *catalog.SpecificationCatalog
	snapshot *entity.CatalogSnapshot
	matcher  *Matcher

	step       Step
	categoryID string
	typeID     string
	active     map[string]struct{}
	model      entity.ModelRef
	specs      map[string]string
	result     *Result
}

// NewSession inicia una sesión en CategorySelect contra el snapshot dado.
func NewSession(cat *catalog.SpecificationCatalog, snap *entity.CatalogSnapshot) *Session {
	s := &Session{catalog: cat, snapshot: snap, matcher: NewMatcher(cat, snap)}
	s.Reset()
	return s
}

// State devuelve una copia del estado actual.
func (s *Session) State() State {
	specs := make(map[string]string, len(s.specs))
	for k, v := range s.specs {
		specs[k] = v
	}
	return State{
		Step:            s.step,
		CategoryID:      s.categoryID,
		TypeID:          s.typeID,
		ActiveFilterIDs: s.ActiveFilters(),
		Model:           s.model,
		SelectedSpecs:   specs,
		Result:          s.result,
	}
}

// Step paso actual.
func (s *Session) Step() Step { return s.step }

// Snapshot snapshot contra el que opera la sesión.
func (s *Session) Snapshot() *entity.CatalogSnapshot { return s.snapshot }

// Matcher matcher ligado al snapshot actual.
func (s *Session) Matcher() *Matcher { return s.matcher }

// ActiveFilters filtros activos en orden lexicográfico.
func (s *Session) ActiveFilters() []string {
	out := make([]string, 0, len(s.active))
	for id := range s.active {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// IsFilterActive indica si el filtro está activo.
func (s *Session) IsFilterActive(id string) bool {
	_, ok := s.active[id]
	return ok
}

// CurrentModel modelo seleccionado, resuelto contra el snapshot actual.
func (s *Session) CurrentModel() (entity.ResolvedModel, bool) {
	if s.model.IsZero() {
		return entity.ResolvedModel{}, false
	}
	return s.matcher.Resolve(s.model)
}

// Candidates candidatos para el tipo y filtros actuales.
func (s *Session) Candidates() []entity.ResolvedModel {
	if s.typeID == "" {
		return nil
	}
	return s.matcher.ListCandidates(s.typeID, s.ActiveFilters())
}

// Preview descripción parcial del modelo actual con la selección en curso.
func (s *Session) Preview() string {
	m, ok := s.CurrentModel()
	if !ok {
		return ""
	}
	return Describe(m, s.specs)
}

// SelectCategory fija la categoría y pasa a TypeSelect.
func (s *Session) SelectCategory(id string) error {
	const op = "selectCategory"
	if err := s.requireStep(op, StepCategorySelect); err != nil {
		return err
	}
	if _, ok := s.snapshot.Category(id); !ok {
		return invalid(op, "categoryId", id, "la categoría no existe")
	}
	s.categoryID = id
	s.typeID = ""
	s.clearFromFilters()
	s.step = StepTypeSelect
	return nil
}

// SelectType fija el tipo. Los tipos sin filtros pasan directo a ModelSelect.
func (s *Session) SelectType(id string) error {
	const op = "selectType"
	if err := s.requireStep(op, StepTypeSelect); err != nil {
		return err
	}
	t, ok := s.snapshot.Type(id)
	if !ok {
		return invalid(op, "typeId", id, "el tipo no existe")
	}
	if t.CategoryID != s.categoryID {
		return invalid(op, "typeId", id, "el tipo no pertenece a la categoría seleccionada")
	}
	s.typeID = id
	s.clearFromFilters()
	if s.catalog.FiltersApplicable(id) {
		s.step = StepFilterSelect
	} else {
		s.step = StepModelSelect
	}
	return nil
}

// ToggleFilter activa o desactiva un filtro del tipo actual. No cambia de paso.
func (s *Session) ToggleFilter(id string) error {
	const op = "toggleFilter"
	if err := s.requireStep(op, StepFilterSelect); err != nil {
		return err
	}
	f, ok := s.snapshot.Filter(id)
	if !ok || f.TypeID != s.typeID {
		return invalid(op, "filterId", id, "el filtro no existe para el tipo seleccionado")
	}
	if _, on := s.active[id]; on {
		delete(s.active, id)
	} else {
		s.active[id] = struct{}{}
	}
	return nil
}

// ConfirmFilters congela los filtros activos y pasa a ModelSelect.
func (s *Session) ConfirmFilters() error {
	if err := s.requireStep("confirmFilters", StepFilterSelect); err != nil {
		return err
	}
	s.step = StepModelSelect
	return nil
}

// SelectModel fija el modelo si está entre los candidatos y pasa a SpecSelect.
func (s *Session) SelectModel(ref entity.ModelRef) error {
	const op = "selectModel"
	if err := s.requireStep(op, StepModelSelect); err != nil {
		return err
	}
	if !s.matcher.IsCandidate(ref, s.typeID, s.ActiveFilters()) {
		return invalid(op, "model", ref.String(), "el modelo no está entre los candidatos")
	}
	s.model = ref
	s.specs = make(map[string]string)
	s.result = nil
	s.step = StepSpecSelect
	return nil
}

// SetSpecification elige una opción para una especificación del modelo actual.
func (s *Session) SetSpecification(name, value string) error {
	const op = "setSpecification"
	if err := s.requireStep(op, StepSpecSelect); err != nil {
		return err
	}
	m, ok := s.CurrentModel()
	if !ok {
		return invalid(op, "model", s.model.String(), "el modelo ya no existe")
	}
	spec, ok := m.Specification(name)
	if !ok {
		return invalid(op, "specification", name, "la especificación no existe en el modelo")
	}
	if _, ok := spec.Option(value); !ok {
		return invalid(op, "option", value, "la opción no existe en "+name)
	}
	s.specs[name] = value
	return nil
}

// Finalize genera código y descripción. Si falla, la sesión sigue en SpecSelect.
func (s *Session) Finalize() (*Result, error) {
	const op = "finalize"
	if err := s.requireStep(op, StepSpecSelect); err != nil {
		return nil, err
	}
	m, ok := s.CurrentModel()
	if !ok {
		return nil, invalid(op, "model", s.model.String(), "el modelo ya no existe")
	}
	res, err := Generate(m, s.specs)
	if err != nil {
		return nil, err
	}
	s.result = res
	s.step = StepComplete
	return res, nil
}

// Back retrocede un paso. Las selecciones anteriores se conservan hasta que la operación
// del paso las reemplaza (y entonces se limpian en cascada).
func (s *Session) Back() error {
	switch s.step {
	case StepComplete:
		s.result = nil
		s.step = StepSpecSelect
	case StepSpecSelect:
		s.model = entity.ModelRef{}
		s.specs = make(map[string]string)
		s.step = StepModelSelect
	case StepModelSelect:
		if s.catalog.FiltersApplicable(s.typeID) {
			s.step = StepFilterSelect
		} else {
			s.step = StepTypeSelect
		}
	case StepFilterSelect:
		s.step = StepTypeSelect
	case StepTypeSelect:
		s.step = StepCategorySelect
	default:
		return invalid("back", "step", string(s.step), "no hay paso anterior")
	}
	return nil
}

// Reset vuelve a CategorySelect sin selecciones.
func (s *Session) Reset() {
	s.step = StepCategorySelect
	s.categoryID = ""
	s.typeID = ""
	s.clearFromFilters()
}

// ReacquireSnapshot reemplaza el snapshot y descarta las selecciones que ya no resuelven.
// Si alguna se descartó devuelve *domain.StaleSnapshotError y la sesión queda en el paso
// válido más temprano; nunca avanza por sí sola.
func (s *Session) ReacquireSnapshot(snap *entity.CatalogSnapshot) error {
	s.snapshot = snap
	s.matcher = NewMatcher(s.catalog, snap)

	var stale []string
	target := s.step
	demote := func(to Step) {
		if stepOrder[to] < stepOrder[target] {
			target = to
		}
	}

	if s.categoryID != "" {
		if _, ok := snap.Category(s.categoryID); !ok {
			stale = append(stale, "categoryId")
			s.Reset()
			return &domain.StaleSnapshotError{Fields: stale, DemotedTo: string(StepCategorySelect)}
		}
	}
	if s.typeID != "" {
		if t, ok := snap.Type(s.typeID); !ok || t.CategoryID != s.categoryID {
			stale = append(stale, "typeId")
			s.typeID = ""
			s.clearFromFilters()
			demote(StepTypeSelect)
		}
	}
	dropped := false
	for id := range s.active {
		if f, ok := snap.Filter(id); !ok || f.TypeID != s.typeID {
			delete(s.active, id)
			dropped = true
		}
	}
	if dropped {
		stale = append(stale, "activeFilterIds")
		s.clearModel()
		demote(StepFilterSelect)
	}
	if !s.model.IsZero() && !s.matcher.IsCandidate(s.model, s.typeID, s.ActiveFilters()) {
		stale = append(stale, "modelRef")
		s.clearModel()
		demote(StepModelSelect)
	}
	if m, ok := s.CurrentModel(); ok {
		specsDropped := false
		for name, value := range s.specs {
			spec, ok := m.Specification(name)
			if !ok {
				delete(s.specs, name)
				specsDropped = true
				continue
			}
			if _, ok := spec.Option(value); !ok {
				delete(s.specs, name)
				specsDropped = true
			}
		}
		if specsDropped {
			stale = append(stale, "selectedSpecs")
			s.result = nil
			demote(StepSpecSelect)
		}
		if s.result != nil {
			res, err := Generate(m, s.specs)
			if err != nil || !sameResult(res, s.result) {
				stale = append(stale, "result")
				s.result = nil
				demote(StepSpecSelect)
			} else {
				s.result = res
			}
		}
	}

	s.step = target
	if len(stale) == 0 {
		return nil
	}
	return &domain.StaleSnapshotError{Fields: stale, DemotedTo: string(target)}
}

func (s *Session) clearFromFilters() {
	s.active = make(map[string]struct{})
	s.clearModel()
}

func (s *Session) clearModel() {
	s.model = entity.ModelRef{}
	s.specs = make(map[string]string)
	s.result = nil
}

func (s *Session) requireStep(op string, want Step) error {
	if s.step != want {
		return invalid(op, "step", string(s.step), "la operación solo es válida en "+string(want))
	}
	return nil
}

func invalid(op, field, value, msg string) error {
	return &domain.ValidationError{Op: op, Field: field, Value: value, Message: msg}
}

func sameResult(a, b *Result) bool {
	return a.Code == b.Code && a.Description == b.Description && a.Price.Equal(b.Price)
}
