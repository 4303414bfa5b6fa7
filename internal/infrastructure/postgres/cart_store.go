package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

var _ cart.CartStore = (*CartStore)(nil)

// slotKey llave fija del único slot del carrito (una fila por slot).
const slotKey = "cart"

// CartStore implementación del slot duradero del carrito sobre PostgreSQL.
// Una sola fila con el snapshot en jsonb; alternativa al backend Redis.
type CartStore struct {
	pool *pgxpool.Pool
}

// NewCartStore construye el adaptador sobre un pool ya conectado.
func NewCartStore(pool *pgxpool.Pool) *CartStore {
	return &CartStore{pool: pool}
}

// EnsureSchema crea la tabla del slot si no existe.
func (s *CartStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS cart_snapshot (
			slot       text PRIMARY KEY,
			payload    jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("crear tabla cart_snapshot: %w", err)
	}
	return nil
}

// Load lee el snapshot del carrito. Si la fila no existe devuelve found=false.
func (s *CartStore) Load(ctx context.Context) (entity.Cart, bool, error) {
	query := `SELECT payload FROM cart_snapshot WHERE slot = $1`
	var payload []byte
	err := s.pool.QueryRow(ctx, query, slotKey).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer slot del carrito: %w", err)
	}

	var c entity.Cart
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, false, fmt.Errorf("decodificar snapshot del carrito: %w", err)
	}
	return c, true, nil
}

// Save sobreescribe el slot completo con el snapshot serializado (upsert).
func (s *CartStore) Save(ctx context.Context, c entity.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializar carrito: %w", err)
	}
	query := `
		INSERT INTO cart_snapshot (slot, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (slot)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	if _, err := s.pool.Exec(ctx, query, slotKey, payload); err != nil {
		return fmt.Errorf("guardar slot del carrito: %w", err)
	}
	return nil
}
