package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/application/usecase"
)

// SessionHandler maneja las sesiones del asistente de configuración (público).
type SessionHandler struct {
	uc *usecase.ConfiguratorUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *usecase.ConfiguratorUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// respond envía el estado o el error; los errores del asistente llevan el estado de la sesión.
func (h *SessionHandler) respond(c *fiber.Ctx, out *dto.SessionResponse, err error) error {
	if err != nil {
		return writeSessionError(c, err, out)
	}
	return c.JSON(out)
}

// Start godoc
// @Summary      Iniciar sesión de configuración
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	out, err := h.uc.Start(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	return h.respond(c, out, err)
}

// Close godoc
// @Summary      Descartar sesión
// @Tags         sessions
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id} [delete]
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	if err := h.uc.Close(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SelectCategory godoc
// @Summary      Elegir categoría
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la sesión"
// @Param        body  body  dto.SelectRequest   true  "Categoría"
// @Success      200   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/category [post]
func (h *SessionHandler) SelectCategory(c *fiber.Ctx) error {
	var in dto.SelectRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SelectCategory(c.UserContext(), c.Params("id"), in.ID)
	return h.respond(c, out, err)
}

// SelectType godoc
// @Summary      Elegir tipo de producto
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la sesión"
// @Param        body  body  dto.SelectRequest   true  "Tipo"
// @Success      200   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/type [post]
func (h *SessionHandler) SelectType(c *fiber.Ctx) error {
	var in dto.SelectRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SelectType(c.UserContext(), c.Params("id"), in.ID)
	return h.respond(c, out, err)
}

// ToggleFilter godoc
// @Summary      Activar/desactivar filtro
// @Tags         sessions
// @Produce      json
// @Param        id        path  string  true  "ID de la sesión"
// @Param        filterId  path  string  true  "ID del filtro"
// @Success      200  {object}  dto.SessionResponse
// @Failure      422  {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/filters/{filterId}/toggle [post]
func (h *SessionHandler) ToggleFilter(c *fiber.Ctx) error {
	out, err := h.uc.ToggleFilter(c.UserContext(), c.Params("id"), c.Params("filterId"))
	return h.respond(c, out, err)
}

// ConfirmFilters godoc
// @Summary      Confirmar filtros
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      422  {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/filters/confirm [post]
func (h *SessionHandler) ConfirmFilters(c *fiber.Ctx) error {
	out, err := h.uc.ConfirmFilters(c.UserContext(), c.Params("id"))
	return h.respond(c, out, err)
}

// SelectModel godoc
// @Summary      Elegir modelo
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la sesión"
// @Param        body  body  dto.SelectModelRequest  true  "Referencia predefined:ID o custom:ID"
// @Success      200   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/model [post]
func (h *SessionHandler) SelectModel(c *fiber.Ctx) error {
	var in dto.SelectModelRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SelectModel(c.UserContext(), c.Params("id"), in.Ref)
	return h.respond(c, out, err)
}

// SetSpecification godoc
// @Summary      Elegir opción de una especificación
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la sesión"
// @Param        name  path  string                       true  "Nombre de la especificación"
// @Param        body  body  dto.SetSpecificationRequest  true  "Valor de la opción"
// @Success      200   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/specifications/{name} [put]
func (h *SessionHandler) SetSpecification(c *fiber.Ctx) error {
	var in dto.SetSpecificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetSpecification(c.UserContext(), c.Params("id"), name, in.Value)
	return h.respond(c, out, err)
}

// Finalize godoc
// @Summary      Generar código y descripción
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      422  {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/finalize [post]
func (h *SessionHandler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.UserContext(), c.Params("id"))
	return h.respond(c, out, err)
}

// Back godoc
// @Summary      Retroceder un paso
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      422  {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/back [post]
func (h *SessionHandler) Back(c *fiber.Ctx) error {
	out, err := h.uc.Back(c.UserContext(), c.Params("id"))
	return h.respond(c, out, err)
}

// Reset godoc
// @Summary      Reiniciar la sesión
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	out, err := h.uc.Reset(c.UserContext(), c.Params("id"))
	return h.respond(c, out, err)
}

// Refresh godoc
// @Summary      Releer el catálogo
// @Description  Aplica un snapshot nuevo. Si alguna selección dejó de existir responde 409 con la sesión degradada.
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionResponse
// @Failure      409  {object}  dto.SessionErrorResponse
// @Router       /api/sessions/{id}/refresh [post]
func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext(), c.Params("id"))
	return h.respond(c, out, err)
}

// Datasheet godoc
// @Summary      Hoja técnica PDF
// @Tags         sessions
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {file}    binary
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/datasheet [get]
func (h *SessionHandler) Datasheet(c *fiber.Ctx) error {
	pdf, code, err := h.uc.Datasheet(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+code+`.pdf"`)
	return c.Send(pdf)
}
