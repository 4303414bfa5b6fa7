package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/domain"
)

// CartHandler maneja las peticiones HTTP del carrito.
type CartHandler struct {
	uc *cart.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart godoc
// @Summary      Carrito actual
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(dto.CartResponseFrom(h.uc.Items()))
}

// AddProduct godoc
// @Summary      Agregar una unidad de un producto al carrito
// @Tags         cart
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/cart/products/{id} [post]
func (h *CartHandler) AddProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de producto inválido"})
	}
	if err := h.uc.AddProduct(c.Context(), productID); err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(dto.CartResponseFrom(h.uc.Items()))
}

// UpdateAmount godoc
// @Summary      Fijar la cantidad de una línea existente del carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del producto"
// @Param        body  body  dto.UpdateAmountRequest  true  "Cantidad absoluta deseada"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/cart/products/{id} [put]
func (h *CartHandler) UpdateAmount(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de producto inválido"})
	}
	var in dto.UpdateAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateProductAmount(c.Context(), productID, in.Amount); err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(dto.CartResponseFrom(h.uc.Items()))
}

// RemoveProduct godoc
// @Summary      Eliminar la línea de un producto del carrito
// @Tags         cart
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/cart/products/{id} [delete]
func (h *CartHandler) RemoveProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de producto inválido"})
	}
	if err := h.uc.RemoveProduct(c.Context(), productID); err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(dto.CartResponseFrom(h.uc.Items()))
}

// errorStatus traduce los errores de dominio del motor a estados HTTP.
func errorStatus(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidAmount:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "cantidad inválida"})
	case domain.ErrProductNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado en el catálogo"})
	case domain.ErrProductNotInCart:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_IN_CART", Message: "el producto no está en el carrito"})
	case domain.ErrOutOfStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: "cantidad solicitada fuera de stock"})
	case domain.ErrStockUnavailable:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STOCK_UNAVAILABLE", Message: "no se pudo consultar el inventario"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
