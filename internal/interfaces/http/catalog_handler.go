package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/catalog"
	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/pkg/validator"
)

// CatalogHandler maneja productos, insumos, recetas y vendedores.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ── Productos ──────────────────────────────────────────────────────────────

// CreateProduct godoc
// @Summary      Alta de producto
// @Description  Asigna el siguiente ID libre dentro del rango de la familia.
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, family, price"
// @Success      201   {object}  dto.ProductDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	resp, err := h.uc.CreateProduct(GetOrganizationID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListProducts godoc
// @Summary      Catálogo de productos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductDTO
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	resp, err := h.uc.ListProducts(GetOrganizationID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// UpdateProduct godoc
// @Summary      Modificar producto
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "name y price"
// @Success      200   {object}  dto.ProductDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	resp, err := h.uc.UpdateProduct(GetOrganizationID(c), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Description  El historial de movimientos del producto se conserva.
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.DeleteProduct(GetOrganizationID(c), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Insumos ────────────────────────────────────────────────────────────────

// CreateIngredient godoc
// @Summary      Alta de insumo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "name, unit, initial_stock"
// @Success      201   {object}  dto.IngredientDTO
// @Router       /api/ingredients [post]
func (h *CatalogHandler) CreateIngredient(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	resp, err := h.uc.CreateIngredient(GetOrganizationID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListIngredients godoc
// @Summary      Insumos con stock
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IngredientDTO
// @Router       /api/ingredients [get]
func (h *CatalogHandler) ListIngredients(c *fiber.Ctx) error {
	resp, err := h.uc.ListIngredients(GetOrganizationID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// DeleteIngredient godoc
// @Summary      Eliminar insumo
// @Description  Rechazado si alguna receta lo usa.
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  int  true  "ID del insumo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [delete]
func (h *CatalogHandler) DeleteIngredient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.DeleteIngredient(GetOrganizationID(c), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Recetas ────────────────────────────────────────────────────────────────

// SetRecipe godoc
// @Summary      Definir la receta de un producto
// @Description  Reemplaza todas las líneas. Las cantidades van en unidad base por pieza.
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.SetRecipeRequest  true  "líneas de receta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/recipe [put]
func (h *CatalogHandler) SetRecipe(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.SetRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	if err := h.uc.SetRecipe(GetOrganizationID(c), id, in); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetRecipe godoc
// @Summary      Receta de un producto
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.RecipeLineDTO
// @Router       /api/products/{id}/recipe [get]
func (h *CatalogHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.uc.GetRecipe(GetOrganizationID(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// ── Vendedores ─────────────────────────────────────────────────────────────

// CreateSeller godoc
// @Summary      Alta de vendedor / ruta
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSellerRequest  true  "name y route_name"
// @Success      201   {object}  dto.SellerDTO
// @Router       /api/sellers [post]
func (h *CatalogHandler) CreateSeller(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	resp, err := h.uc.CreateSeller(GetOrganizationID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListSellers godoc
// @Summary      Roster de vendedores con saldos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SellerDTO
// @Router       /api/sellers [get]
func (h *CatalogHandler) ListSellers(c *fiber.Ctx) error {
	resp, err := h.uc.ListSellers(GetOrganizationID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// UpdateCommission godoc
// @Summary      Esquema de pago de un vendedor
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vendedor"
// @Param        body  body  dto.UpdateCommissionRequest  true  "esquema de comisión"
// @Success      200   {object}  dto.SellerDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sellers/{id}/commission [put]
func (h *CatalogHandler) UpdateCommission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateCommissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateCommission(GetOrganizationID(c), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// DeleteSeller godoc
// @Summary      Eliminar vendedor
// @Description  Su historial queda; el reporte diario lo mostrará como Ex-Vendedor.
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  int  true  "ID del vendedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [delete]
func (h *CatalogHandler) DeleteSeller(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.DeleteSeller(GetOrganizationID(c), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
