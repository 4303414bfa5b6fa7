package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

var _ cart.CartStore = (*CartStore)(nil)

// cartKey llave única del slot; el snapshot sobrevive reinicios del proceso.
const cartKey = "carrito:cart"

// CartStore implementación del slot duradero del carrito sobre Redis.
// Guarda el carrito completo serializado a JSON bajo una única llave.
type CartStore struct {
	client *redis.Client
}

// NewCartStore construye el adaptador con un cliente Redis ya conectado.
func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

// Connect crea el cliente Redis y verifica la conexión con un ping.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return client, nil
}

// Load lee el snapshot del carrito. Si la llave no existe devuelve found=false.
func (s *CartStore) Load(ctx context.Context) (entity.Cart, bool, error) {
	payload, err := s.client.Get(ctx, cartKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer slot del carrito: %w", err)
	}

	var c entity.Cart
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return nil, false, fmt.Errorf("decodificar snapshot del carrito: %w", err)
	}
	return c, true, nil
}

// Save sobreescribe el slot completo con el snapshot serializado (sin TTL).
func (s *CartStore) Save(ctx context.Context, c entity.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializar carrito: %w", err)
	}
	if err := s.client.Set(ctx, cartKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("guardar slot del carrito: %w", err)
	}
	return nil
}
