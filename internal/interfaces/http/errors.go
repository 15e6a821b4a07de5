package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/domain"
)

// errorStatus traduce un error de dominio a estado HTTP y cuerpo.
func errorStatus(err error) (int, dto.ErrorResponse) {
	var (
		verr  *domain.ValidationError
		gerr  *domain.GenerationError
		stale *domain.StaleSnapshotError
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: verr.Error(),
			Fields:  []dto.FieldError{{Field: verr.Field, Value: verr.Value}},
		}
	case errors.As(err, &gerr):
		fields := make([]dto.FieldError, 0, len(gerr.Specs))
		for _, s := range gerr.Specs {
			fields = append(fields, dto.FieldError{Field: s})
		}
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: string(gerr.Kind), Message: gerr.Error(), Fields: fields}
	case errors.As(err, &stale):
		fields := make([]dto.FieldError, 0, len(stale.Fields))
		for _, f := range stale.Fields {
			fields = append(fields, dto.FieldError{Field: f})
		}
		return fiber.StatusConflict, dto.ErrorResponse{Code: "STALE_SNAPSHOT", Message: stale.Error(), Fields: fields}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, domain.ErrSessionLimit):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "SESSION_LIMIT", Message: err.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}

// writeError responde con el error traducido; los 5xx se registran con el request id.
func writeError(c *fiber.Ctx, err error) error {
	status, body := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", requestID(c)).
			Str("path", c.Path()).
			Msg("error atendiendo petición")
	}
	return c.Status(status).JSON(body)
}

// writeSessionError como writeError, pero si la operación devolvió el estado de la sesión
// lo adjunta para que el cliente se resincronice.
func writeSessionError(c *fiber.Ctx, err error, session *dto.SessionResponse) error {
	if session == nil {
		return writeError(c, err)
	}
	status, body := errorStatus(err)
	return c.Status(status).JSON(dto.SessionErrorResponse{ErrorResponse: body, Session: session})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
