package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrStockUnavailable = errors.New("stock no disponible")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrOutOfStock       = errors.New("cantidad solicitada fuera de stock")
	ErrProductNotInCart = errors.New("el producto no está en el carrito")
	ErrInvalidAmount    = errors.New("cantidad inválida")
)
