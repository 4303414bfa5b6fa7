package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

var (
	_ cart.StockClient   = (*Client)(nil)
	_ cart.CatalogClient = (*Client)(nil)
)

// Client adaptador HTTP hacia la API de la tienda: catálogo de productos
// (GET products/{id}) e inventario (GET/PUT stock/{id}).
// Usa net/http de la stdlib; no requiere librerías de terceros.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con el timeout de red indicado.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetStock consulta la cantidad autoritativa de un producto en el inventario remoto.
func (c *Client) GetStock(ctx context.Context, productID int) (entity.Stock, error) {
	url := fmt.Sprintf("%s/stock/%d", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.Stock{}, fmt.Errorf("crear petición de stock: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Stock{}, fmt.Errorf("consultar stock %d: %w", productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entity.Stock{}, fmt.Errorf("stock %d: %w", productID, domain.ErrStockUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return entity.Stock{}, fmt.Errorf("consultar stock %d: status %d", productID, resp.StatusCode)
	}

	var body struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.Stock{}, fmt.Errorf("decodificar stock %d: %w", productID, err)
	}
	return entity.Stock{ProductID: productID, Amount: body.Amount}, nil
}

// PutStock reescribe la cantidad de un producto en el inventario remoto.
func (c *Client) PutStock(ctx context.Context, stock entity.Stock) error {
	payload, err := json.Marshal(map[string]int{"amount": stock.Amount})
	if err != nil {
		return fmt.Errorf("serializar stock: %w", err)
	}
	url := fmt.Sprintf("%s/stock/%d", c.baseURL, stock.ProductID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("crear petición de stock: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("escribir stock %d: %w", stock.ProductID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("escribir stock %d: status %d", stock.ProductID, resp.StatusCode)
	}
	return nil
}

// GetProduct consulta los datos de catálogo de un producto.
func (c *Client) GetProduct(ctx context.Context, productID int) (entity.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.Product{}, fmt.Errorf("crear petición de producto: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Product{}, fmt.Errorf("consultar producto %d: %w", productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entity.Product{}, fmt.Errorf("producto %d: %w", productID, domain.ErrProductNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return entity.Product{}, fmt.Errorf("consultar producto %d: status %d", productID, resp.StatusCode)
	}

	var product entity.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return entity.Product{}, fmt.Errorf("decodificar producto %d: %w", productID, err)
	}
	return product, nil
}
