package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdateAmountRequest cantidad absoluta deseada para una línea del carrito.
type UpdateAmountRequest struct {
	Amount int `json:"amount"`
}

// CartItemResponse línea del carrito aplanada (producto + cantidad),
// con la misma forma que consumía el frontend original.
type CartItemResponse struct {
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Price  decimal.Decimal `json:"price"`
	Image  string          `json:"image"`
	Amount int             `json:"amount"`
}

// CartResponse carrito completo con totales.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

// CartResponseFrom convierte el carrito de dominio a su representación HTTP.
func CartResponseFrom(c entity.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c))
	for _, it := range c {
		items = append(items, CartItemResponse{
			ID:     it.Product.ID,
			Title:  it.Product.Title,
			Price:  it.Product.Price,
			Image:  it.Product.Image,
			Amount: it.Amount,
		})
	}
	return CartResponse{
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
