package entity

import "github.com/shopspring/decimal"

// CartItem una línea del carrito: producto + cantidad solicitada (>= 1).
// Invariante: Amount nunca supera el stock que era autoritativo al confirmar la escritura.
type CartItem struct {
	Product Product `json:"product"`
	Amount  int     `json:"amount"`
}

// Cart secuencia ordenada de líneas, como máximo una por producto.
// El motor del carrito es su único dueño; el slot duradero guarda solo snapshots serializados.
type Cart []CartItem

// Find devuelve la línea del producto indicado y si existe.
func (c Cart) Find(productID int) (CartItem, bool) {
	for _, it := range c {
		if it.Product.ID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

// Upsert devuelve una copia con la línea del producto reemplazada,
// o añadida al final si es nueva. Las demás líneas conservan su orden.
func (c Cart) Upsert(item CartItem) Cart {
	next := c.Clone()
	for i := range next {
		if next[i].Product.ID == item.Product.ID {
			next[i] = item
			return next
		}
	}
	return append(next, item)
}

// Remove devuelve una copia sin la línea del producto indicado.
func (c Cart) Remove(productID int) Cart {
	next := make(Cart, 0, len(c))
	for _, it := range c {
		if it.Product.ID != productID {
			next = append(next, it)
		}
	}
	return next
}

// Clone copia las líneas (Product y CartItem son valores).
func (c Cart) Clone() Cart {
	next := make(Cart, len(c))
	copy(next, c)
	return next
}

// TotalItems suma las cantidades de todas las líneas.
func (c Cart) TotalItems() int {
	total := 0
	for _, it := range c {
		total += it.Amount
	}
	return total
}

// TotalPrice suma precio por cantidad de todas las líneas.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Amount))))
	}
	return total
}
