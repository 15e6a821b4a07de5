package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrForbidden    = errors.New("acceso denegado")

	// Errores del motor de configuración.
	ErrValidation    = errors.New("operación inválida para el estado actual")
	ErrGeneration    = errors.New("no se pudo generar el código")
	ErrStaleSnapshot = errors.New("la selección ya no es válida en el catálogo actual")
	ErrSessionLimit  = errors.New("se alcanzó el máximo de sesiones activas")
)

// ValidationError operación invocada en un estado incorrecto o con un id que no existe
// en el snapshot o en el modelo actual. El estado de la sesión no cambia.
type ValidationError struct {
	Op      string // operación del asistente (selectCategory, toggleFilter, ...)
	Field   string // campo que falló (categoryId, typeId, filterId, model, specification, option, step)
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %q: %s", e.Op, e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// GenerationErrorKind tipo de fallo de generación.
type GenerationErrorKind string

const (
	MissingSpecifications GenerationErrorKind = "MISSING_SPECIFICATIONS"
	EmptyOptionCode       GenerationErrorKind = "EMPTY_OPTION_CODE"
)

// GenerationError fallo al componer código y descripción.
// Para MissingSpecifications, Specs lista TODAS las especificaciones faltantes en orden de declaración.
type GenerationError struct {
	Kind  GenerationErrorKind
	Specs []string
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case MissingSpecifications:
		return "especificaciones sin seleccionar: " + strings.Join(e.Specs, ", ")
	case EmptyOptionCode:
		return "opción sin código en la especificación " + strings.Join(e.Specs, ", ")
	default:
		return string(e.Kind)
	}
}

func (e *GenerationError) Unwrap() error { return ErrGeneration }

// StaleSnapshotError selecciones invalidadas al refrescar el snapshot.
// DemotedTo es el paso al que retrocedió la sesión.
type StaleSnapshotError struct {
	Fields    []string
	DemotedTo string
}

func (e *StaleSnapshotError) Error() string {
	return fmt.Sprintf("selección obsoleta (%s); la sesión vuelve a %s", strings.Join(e.Fields, ", "), e.DemotedTo)
}

func (e *StaleSnapshotError) Unwrap() error { return ErrStaleSnapshot }
