package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carrito-api/internal/application/cart"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CartUC *cart.CartUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	cartGroup := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.GetCart)
	cartGroup.Post("/products/:id", cartHandler.AddProduct)
	cartGroup.Put("/products/:id", cartHandler.UpdateAmount)
	cartGroup.Delete("/products/:id", cartHandler.RemoveProduct)
}
