package cart

import (
	"context"

	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

// StockClient puerto hacia el servicio remoto de inventario.
// GetStock consulta la cantidad autoritativa; PutStock la reescribe completa.
type StockClient interface {
	GetStock(ctx context.Context, productID int) (entity.Stock, error)
	PutStock(ctx context.Context, stock entity.Stock) error
}

// CatalogClient puerto hacia el catálogo de productos (solo lectura).
type CatalogClient interface {
	GetProduct(ctx context.Context, productID int) (entity.Product, error)
}

// CartStore slot duradero único donde se persiste el snapshot del carrito.
// Load devuelve (carrito, encontrado, error); Save sobreescribe el slot completo.
type CartStore interface {
	Load(ctx context.Context) (entity.Cart, bool, error)
	Save(ctx context.Context, c entity.Cart) error
}

// Notifier avisos hacia el operador humano. Fire-and-forget: el motor
// no consume ningún valor de retorno.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}
