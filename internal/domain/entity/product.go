package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo remoto.
// Es un hecho inmutable del catálogo: el motor del carrito solo lo lee.
type Product struct {
	ID    int             `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}
