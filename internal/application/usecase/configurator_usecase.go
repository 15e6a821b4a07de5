package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/domain"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/domain/configurator"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
	"github.com/jhoicas/configurador-api/pkg/logger"
)

// SessionConfig límites del registro de sesiones.
type SessionConfig struct {
	TTL time.Duration // inactividad máxima; 0 = sin expiración
	Max int           // sesiones simultáneas; 0 = sin límite
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *configurator.Session
	lastSeen time.Time
}

// ConfiguratorUseCase registro de sesiones del asistente. Cada sesión se serializa con su
// propio mutex; el registro solo protege el mapa.
type ConfiguratorUseCase struct {
	specs      *catalog.SpecificationCatalog
	source     SnapshotSource
	datasheets DatasheetGenerator
	cfg        SessionConfig
	now        func() time.Time
	log        zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewConfiguratorUseCase construye el caso de uso. datasheets puede ser nil si no se exponen hojas técnicas.
func NewConfiguratorUseCase(specs *catalog.SpecificationCatalog, source SnapshotSource, datasheets DatasheetGenerator, cfg SessionConfig) *ConfiguratorUseCase {
	return &ConfiguratorUseCase{
		specs:      specs,
		source:     source,
		datasheets: datasheets,
		cfg:        cfg,
		now:        time.Now,
		log:        logger.Component("configurator"),
		sessions:   make(map[string]*sessionEntry),
	}
}

// SetClock reemplaza el reloj usado para la expiración de sesiones.
func (uc *ConfiguratorUseCase) SetClock(now func() time.Time) { uc.now = now }

// Start abre una sesión nueva en CategorySelect sobre un snapshot recién leído.
func (uc *ConfiguratorUseCase) Start(ctx context.Context) (*dto.SessionResponse, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	purged := uc.purgeLocked()
	if uc.cfg.Max > 0 && len(uc.sessions) >= uc.cfg.Max {
		uc.mu.Unlock()
		uc.log.Warn().Int("max", uc.cfg.Max).Msg("límite de sesiones alcanzado")
		return nil, domain.ErrSessionLimit
	}
	id := uuid.New().String()
	e := &sessionEntry{session: configurator.NewSession(uc.specs, snap), lastSeen: uc.now()}
	uc.sessions[id] = e
	uc.mu.Unlock()

	uc.log.Debug().Str("session_id", id).Int("purged", purged).Msg("sesión iniciada")
	return uc.toSessionResponse(id, e.session), nil
}

// Get devuelve el estado de la sesión.
func (uc *ConfiguratorUseCase) Get(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(*configurator.Session) error { return nil })
}

// Close descarta la sesión.
func (uc *ConfiguratorUseCase) Close(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(uc.sessions, id)
	uc.log.Debug().Str("session_id", id).Msg("sesión cerrada")
	return nil
}

// SelectCategory ver configurator.Session.SelectCategory.
func (uc *ConfiguratorUseCase) SelectCategory(ctx context.Context, id, categoryID string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(s *configurator.Session) error { return s.SelectCategory(categoryID) })
}

// SelectType ver configurator.Session.SelectType.
func (uc *ConfiguratorUseCase) SelectType(ctx context.Context, id, typeID string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(s *configurator.Session) error { return s.SelectType(typeID) })
}

// ToggleFilter ver configurator.Session.ToggleFilter.
func (uc *ConfiguratorUseCase) ToggleFilter(ctx context.Context, id, filterID string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(s *configurator.Session) error { return s.ToggleFilter(filterID) })
}

// ConfirmFilters ver configurator.Session.ConfirmFilters.
func (uc *ConfiguratorUseCase) ConfirmFilters(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(s *configurator.Session) error { return s.ConfirmFilters() })
}

// SelectModel recibe la referencia en forma "predefined:ID" o "custom:ID".
func (uc *ConfiguratorUseCase) SelectModel(ctx context.Context, id, ref string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(s *configurator.Session) error {
		r, err := entity.ParseModelRef(ref)
		if err != nil {
			return &domain.ValidationError{Op: "selectModel", Field: "model", Value: ref, Message: err.Error()}
		}
		return s.SelectModel(r)
	})
}

// SetSpecification ver configurator.Session.SetSpecification.
func (uc *ConfiguratorUseCase) SetSpecification(ctx context.Context, id, name, value string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(s *configurator.Session) error { return s.SetSpecification(name, value) })
}

// Finalize genera el código; con error la sesión sigue en SpecSelect.
func (uc *ConfiguratorUseCase) Finalize(ctx context.Context, id string) (*dto.SessionResponse, error) {
	resp, err := uc.apply(id, func(s *configurator.Session) error {
		_, err := s.Finalize()
		return err
	})
	if err == nil {
		uc.log.Info().Str("session_id", id).Str("code", resp.Result.Code).Msg("configuración finalizada")
	}
	return resp, err
}

// Back retrocede un paso.
func (uc *ConfiguratorUseCase) Back(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(s *configurator.Session) error { return s.Back() })
}

// Reset vuelve a CategorySelect.
func (uc *ConfiguratorUseCase) Reset(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.apply(id, func(s *configurator.Session) error {
		s.Reset()
		return nil
	})
}

// Refresh vuelve a leer el catálogo externo y lo aplica a la sesión. Si alguna selección quedó
// invalidada devuelve el estado degradado junto con *domain.StaleSnapshotError.
func (uc *ConfiguratorUseCase) Refresh(ctx context.Context, id string) (*dto.SessionResponse, error) {
	e, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	err = e.session.ReacquireSnapshot(snap)
	resp := uc.toSessionResponse(id, e.session)
	var stale *domain.StaleSnapshotError
	if errors.As(err, &stale) {
		uc.log.Warn().Str("session_id", id).Strs("fields", stale.Fields).Str("step", stale.DemotedTo).Msg("sesión degradada por cambio de catálogo")
		return resp, err
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Datasheet genera la hoja técnica PDF de una sesión en Complete.
func (uc *ConfiguratorUseCase) Datasheet(ctx context.Context, id string) ([]byte, string, error) {
	if uc.datasheets == nil {
		return nil, "", fmt.Errorf("%w: hojas técnicas deshabilitadas", domain.ErrNotFound)
	}
	e, err := uc.lookup(id)
	if err != nil {
		return nil, "", err
	}

	e.mu.Lock()
	s := e.session
	state := s.State()
	if state.Step != configurator.StepComplete || state.Result == nil {
		e.mu.Unlock()
		return nil, "", &domain.ValidationError{Op: "datasheet", Field: "step", Value: string(state.Step), Message: "la sesión no está completa"}
	}
	model, _ := s.CurrentModel()
	sheet := Datasheet{
		Code:            state.Result.Code,
		Description:     state.Result.Description,
		ModelName:       model.DisplayName,
		ModelDetail:     model.Description,
		TypeName:        state.TypeID,
		Price:           state.Result.Price,
		SnapshotTakenAt: s.Snapshot().TakenAt(),
	}
	if t, ok := s.Snapshot().Type(state.TypeID); ok && t.Name != "" {
		sheet.TypeName = t.Name
	}
	for _, sel := range state.Result.Selections {
		sheet.Lines = append(sheet.Lines, DatasheetLine{Specification: sel.Specification, Code: sel.Option.Code, Label: sel.Option.Label})
	}
	e.mu.Unlock()

	pdf, err := uc.datasheets.GenerateDatasheet(ctx, sheet)
	if err != nil {
		return nil, "", err
	}
	return pdf, sheet.Code, nil
}

// Active número de sesiones vivas (sin contar las expiradas).
func (uc *ConfiguratorUseCase) Active() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.purgeLocked()
	return len(uc.sessions)
}

// apply ejecuta op con la sesión bloqueada. Con error de validación o generación devuelve
// también el estado (sin cambios) para que el cliente pueda mostrarlo.
func (uc *ConfiguratorUseCase) apply(id string, op func(*configurator.Session) error) (*dto.SessionResponse, error) {
	e, err := uc.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := op(e.session); err != nil {
		uc.log.Debug().Str("session_id", id).Err(err).Msg("operación rechazada")
		return uc.toSessionResponse(id, e.session), err
	}
	return uc.toSessionResponse(id, e.session), nil
}

func (uc *ConfiguratorUseCase) lookup(id string) (*sessionEntry, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	e, ok := uc.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	if uc.expired(e, now) {
		delete(uc.sessions, id)
		return nil, domain.ErrNotFound
	}
	e.lastSeen = now
	return e, nil
}

func (uc *ConfiguratorUseCase) purgeLocked() int {
	now := uc.now()
	n := 0
	for id, e := range uc.sessions {
		if uc.expired(e, now) {
			delete(uc.sessions, id)
			n++
		}
	}
	return n
}

func (uc *ConfiguratorUseCase) expired(e *sessionEntry, now time.Time) bool {
	return uc.cfg.TTL > 0 && now.Sub(e.lastSeen) > uc.cfg.TTL
}

// toSessionResponse estado de la sesión más las opciones que el paso actual ofrece.
func (uc *ConfiguratorUseCase) toSessionResponse(id string, s *configurator.Session) *dto.SessionResponse {
	st := s.State()
	snap := s.Snapshot()
	resp := &dto.SessionResponse{
		ID:              id,
		Step:            string(st.Step),
		CategoryID:      st.CategoryID,
		TypeID:          st.TypeID,
		ActiveFilterIDs: st.ActiveFilterIDs,
		Model:           st.Model.String(),
		SelectedSpecs:   st.SelectedSpecs,
		SnapshotTakenAt: snap.TakenAt(),
		Preview:         s.Preview(),
		Result:          toGenerationResponse(st.Result),
	}

	switch st.Step {
	case configurator.StepCategorySelect:
		for _, c := range snap.Categories() {
			resp.Categories = append(resp.Categories, dto.CategoryOption{ID: c.ID, Name: c.Name})
		}
	case configurator.StepTypeSelect:
		if c, ok := snap.Category(st.CategoryID); ok {
			for _, t := range c.Types {
				resp.Types = append(resp.Types, dto.TypeOption{ID: t.ID, Name: t.Name, FiltersApplicable: uc.specs.FiltersApplicable(t.ID)})
			}
		}
	case configurator.StepFilterSelect:
		for _, f := range snap.FiltersByType(st.TypeID) {
			resp.Filters = append(resp.Filters, dto.FilterOption{ID: f.ID, Name: f.Name, Predefined: f.Predefined, Active: s.IsFilterActive(f.ID)})
		}
	case configurator.StepModelSelect:
		for _, m := range s.Candidates() {
			resp.Candidates = append(resp.Candidates, toModelResponse(m))
		}
	case configurator.StepSpecSelect, configurator.StepComplete:
		if m, ok := s.CurrentModel(); ok {
			for _, spec := range m.Specifications {
				resp.Specifications = append(resp.Specifications, dto.SpecificationView{
					SpecificationDTO: toSpecificationDTO(spec),
					Selected:         st.SelectedSpecs[spec.Name],
				})
			}
		}
	}
	return resp
}
