package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

// CartUseCase el motor del carrito: mantiene el estado en memoria, aplica la
// disciplina de reserva de stock (lo reservado en el carrito más lo disponible
// en inventario se conserva por producto) y coordina los colaboradores.
//
// Cada cambio de cantidad en el carrito es una escritura en dos fases:
// primero el stock remoto, después el snapshot duradero. Si el snapshot no se
// puede guardar se emite una escritura de compensación al stock y el carrito
// en memoria no se toca.
type CartUseCase struct {
	// mu serializa las operaciones mutadoras: una operación se procesa
	// completa antes de que empiece la siguiente.
	mu   sync.Mutex
	cart entity.Cart

	stock    StockClient
	catalog  CatalogClient
	store    CartStore
	notifier Notifier
}

// NewCartUseCase construye el motor con sus colaboradores inyectados.
// El carrito inicial está vacío; llamar Restore para rehidratar desde el slot duradero.
func NewCartUseCase(stock StockClient, catalog CatalogClient, store CartStore, notifier Notifier) *CartUseCase {
	return &CartUseCase{
		stock:    stock,
		catalog:  catalog,
		store:    store,
		notifier: notifier,
	}
}

// Restore rehidrata el carrito desde el slot duradero. Si el slot está vacío
// o la carga falla, el carrito queda vacío (la carga no hace llamadas de red).
func (uc *CartUseCase) Restore(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	saved, found, err := uc.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar carrito guardado: %w", err)
	}
	if found {
		uc.cart = saved
	}
	return nil
}

// Items devuelve una copia del carrito actual. Llamadas sucesivas sin
// mutaciones intermedias devuelven el mismo contenido.
func (uc *CartUseCase) Items() entity.Cart {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cart.Clone()
}

// AddProduct agrega una unidad del producto al carrito (o crea la línea con
// cantidad 1 si es nuevo), verificando antes contra el stock remoto.
func (uc *CartUseCase) AddProduct(ctx context.Context, productID int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := 0
	line, inCart := uc.cart.Find(productID)
	if inCart {
		current = line.Amount
	}

	stk, err := uc.stock.GetStock(ctx, productID)
	if err != nil {
		uc.notifier.Failure("Error en la adición del producto")
		return domain.ErrStockUnavailable
	}

	requested := current + 1
	if requested > stk.Amount {
		uc.notifier.Failure("Cantidad solicitada fuera de stock")
		return domain.ErrOutOfStock
	}

	product := line.Product
	if !inCart {
		product, err = uc.catalog.GetProduct(ctx, productID)
		if err != nil {
			uc.notifier.Failure("Error en la adición del producto")
			return domain.ErrProductNotFound
		}
	}

	next := uc.cart.Upsert(entity.CartItem{Product: product, Amount: requested})

	prev := stk.Amount
	stk.Amount--
	if err := uc.stock.PutStock(ctx, stk); err != nil {
		uc.notifier.Failure("Error en la adición del producto")
		return domain.ErrStockUnavailable
	}

	if err := uc.commit(ctx, next, entity.Stock{ProductID: productID, Amount: prev}); err != nil {
		uc.notifier.Failure("Error en la adición del producto")
		return err
	}

	uc.notifier.Success("Producto agregado al carrito")
	return nil
}

// RemoveProduct elimina la línea completa del producto y devuelve al
// inventario la cantidad que estaba reservada.
func (uc *CartUseCase) RemoveProduct(ctx context.Context, productID int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	line, inCart := uc.cart.Find(productID)
	if !inCart {
		uc.notifier.Failure("Error en la eliminación del producto")
		return domain.ErrProductNotInCart
	}

	stk, err := uc.stock.GetStock(ctx, productID)
	if err != nil {
		uc.notifier.Failure("Error en la eliminación del producto")
		return domain.ErrStockUnavailable
	}

	prev := stk.Amount
	stk.Amount += line.Amount
	if err := uc.stock.PutStock(ctx, stk); err != nil {
		uc.notifier.Failure("Error en la eliminación del producto")
		return domain.ErrStockUnavailable
	}

	next := uc.cart.Remove(productID)
	if err := uc.commit(ctx, next, entity.Stock{ProductID: productID, Amount: prev}); err != nil {
		uc.notifier.Failure("Error en la eliminación del producto")
		return err
	}

	uc.notifier.Success("Producto eliminado del carrito")
	return nil
}

// UpdateProductAmount fija la cantidad de una línea existente en un valor
// absoluto (no un delta). Nunca crea líneas nuevas.
func (uc *CartUseCase) UpdateProductAmount(ctx context.Context, productID, amount int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if amount < 1 {
		uc.notifier.Failure("Cantidad inválida")
		return domain.ErrInvalidAmount
	}

	line, inCart := uc.cart.Find(productID)
	if !inCart {
		uc.notifier.Failure("El producto no está en el carrito")
		return domain.ErrProductNotInCart
	}

	stk, err := uc.stock.GetStock(ctx, productID)
	if err != nil {
		uc.notifier.Failure("Error al cambiar la cantidad del producto")
		return domain.ErrStockUnavailable
	}
	if amount > stk.Amount {
		uc.notifier.Failure("Cantidad solicitada fuera de stock")
		return domain.ErrOutOfStock
	}

	delta := amount - line.Amount
	prev := stk.Amount
	stk.Amount -= delta
	if err := uc.stock.PutStock(ctx, stk); err != nil {
		uc.notifier.Failure("Error al cambiar la cantidad del producto")
		return domain.ErrStockUnavailable
	}

	line.Amount = amount
	next := uc.cart.Upsert(line)
	if err := uc.commit(ctx, next, entity.Stock{ProductID: productID, Amount: prev}); err != nil {
		uc.notifier.Failure("Error al cambiar la cantidad del producto")
		return err
	}

	uc.notifier.Success("Cantidad del producto actualizada")
	return nil
}

// commit persiste el snapshot y, solo si la escritura duradera tuvo éxito,
// reemplaza el carrito en memoria. Si falla, emite la escritura de
// compensación que restaura el stock previo.
func (uc *CartUseCase) commit(ctx context.Context, next entity.Cart, prevStock entity.Stock) error {
	if err := uc.store.Save(ctx, next); err != nil {
		if rbErr := uc.stock.PutStock(ctx, prevStock); rbErr != nil {
			// La compensación también falló: stock y carrito pueden quedar divergentes.
			log.Error().Err(rbErr).
				Int("product_id", prevStock.ProductID).
				Int("stock_previo", prevStock.Amount).
				Msg("compensación de stock fallida tras error persistiendo el carrito")
		}
		return fmt.Errorf("guardar carrito: %w", err)
	}
	uc.cart = next
	return nil
}
