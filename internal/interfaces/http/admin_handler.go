package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/application/usecase"
)

// AdminHandler mutaciones del catálogo externo (protegido, rol admin).
type AdminHandler struct {
	uc *usecase.CatalogUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.CatalogUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// CreateFilter godoc
// @Summary      Crear filtro personalizado
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFilterRequest  true  "Filtro"
// @Success      201   {object}  dto.FilterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/filters [post]
func (h *AdminHandler) CreateFilter(c *fiber.Ctx) error {
	var in dto.CreateFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddFilter(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	log.Info().Str("user_id", GetUserID(c)).Str("filter_id", out.ID).Msg("filtro creado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteFilter godoc
// @Summary      Eliminar filtro personalizado
// @Description  Los filtros predefinidos no se pueden eliminar (403).
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID del filtro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/filters/{id} [delete]
func (h *AdminHandler) DeleteFilter(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.RemoveFilter(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	log.Info().Str("user_id", GetUserID(c)).Str("filter_id", id).Msg("filtro eliminado")
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateProduct godoc
// @Summary      Crear producto personalizado
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomProductRequest  true  "Producto"
// @Success      201   {object}  dto.CustomProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/products [post]
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateCustomProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCustomProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	log.Info().Str("user_id", GetUserID(c)).Str("product_id", out.ID).Str("code", out.Code).Msg("producto personalizado creado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetProduct godoc
// @Summary      Obtener producto personalizado
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CustomProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [get]
func (h *AdminHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetCustomProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar producto personalizado
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.DeleteCustomProduct(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	log.Info().Str("user_id", GetUserID(c)).Str("product_id", id).Msg("producto personalizado eliminado")
	return c.SendStatus(fiber.StatusNoContent)
}
