package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	apphttp "github.com/jhoicas/carrito-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Colaboradores falsos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStock struct{ amounts map[int]int }

func (m *memStock) GetStock(_ context.Context, productID int) (entity.Stock, error) {
	amount, ok := m.amounts[productID]
	if !ok {
		return entity.Stock{}, errors.New("stock no registrado")
	}
	return entity.Stock{ProductID: productID, Amount: amount}, nil
}

func (m *memStock) PutStock(_ context.Context, stock entity.Stock) error {
	m.amounts[stock.ProductID] = stock.Amount
	return nil
}

type memCatalog struct{ products map[int]entity.Product }

func (m *memCatalog) GetProduct(_ context.Context, productID int) (entity.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return entity.Product{}, errors.New("producto no registrado")
	}
	return p, nil
}

type memStore struct{ saved entity.Cart }

func (m *memStore) Load(_ context.Context) (entity.Cart, bool, error) {
	return m.saved, m.saved != nil, nil
}

func (m *memStore) Save(_ context.Context, c entity.Cart) error {
	m.saved = c.Clone()
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Failure(string) {}

// buildTestApp arma una app Fiber con el motor cableado a fakes en memoria.
// stocks define el inventario; el catálogo conoce los productos 1 y 2.
func buildTestApp(t *testing.T, stocks map[int]int) (*fiber.App, *memStock) {
	t.Helper()
	stock := &memStock{amounts: stocks}
	catalog := &memCatalog{products: map[int]entity.Product{
		1: {ID: 1, Title: "Tênis de Caminhada Leve", Price: decimal.RequireFromString("179.90")},
		2: {ID: 2, Title: "Tênis VR Caminhada", Price: decimal.RequireFromString("139.90")},
	}}
	uc := cart.NewCartUseCase(stock, catalog, &memStore{}, noopNotifier{})
	require.NoError(t, uc.Restore(context.Background()))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{CartUC: uc})
	return app, stock
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas del carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCart_VacioAlInicio(t *testing.T) {
	app, _ := buildTestApp(t, map[int]int{})

	resp := doRequest(t, app, http.MethodGet, "/api/cart/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Empty(t, body["items"])
	assert.Equal(t, float64(0), body["totalItems"])
}

func TestAddProduct_DevuelveElCarrito(t *testing.T) {
	app, stock := buildTestApp(t, map[int]int{1: 5})

	resp := doRequest(t, app, http.MethodPost, "/api/cart/products/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, float64(1), line["id"])
	assert.Equal(t, "Tênis de Caminhada Leve", line["title"])
	assert.Equal(t, float64(1), line["amount"])
	assert.Equal(t, 4, stock.amounts[1])
}

func TestAddProduct_IDInvalido(t *testing.T) {
	app, _ := buildTestApp(t, map[int]int{})

	resp := doRequest(t, app, http.MethodPost, "/api/cart/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decodeBody(t, resp)["code"])
}

func TestAddProduct_SinStockResponde409(t *testing.T) {
	app, _ := buildTestApp(t, map[int]int{1: 0})

	resp := doRequest(t, app, http.MethodPost, "/api/cart/products/1", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "OUT_OF_STOCK", decodeBody(t, resp)["code"])
}

func TestAddProduct_InventarioCaidoResponde502(t *testing.T) {
	// Producto 2 existe en catálogo pero el inventario no lo conoce
	app, _ := buildTestApp(t, map[int]int{})

	resp := doRequest(t, app, http.MethodPost, "/api/cart/products/2", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "STOCK_UNAVAILABLE", decodeBody(t, resp)["code"])
}

func TestAddProduct_FueraDeCatalogoResponde404(t *testing.T) {
	app, _ := buildTestApp(t, map[int]int{9: 3})

	resp := doRequest(t, app, http.MethodPost, "/api/cart/products/9", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestUpdateAmount_FlujoCompleto(t *testing.T) {
	app, stock := buildTestApp(t, map[int]int{1: 5})

	doRequest(t, app, http.MethodPost, "/api/cart/products/1", "").Body.Close()

	resp := doRequest(t, app, http.MethodPut, "/api/cart/products/1", `{"amount": 3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]any)["amount"])
	assert.Equal(t, 2, stock.amounts[1])
}

func TestUpdateAmount_CantidadCeroResponde400(t *testing.T) {
	app, _ := buildTestApp(t, map[int]int{1: 5})
	doRequest(t, app, http.MethodPost, "/api/cart/products/1", "").Body.Close()

	resp := doRequest(t, app, http.MethodPut, "/api/cart/products/1", `{"amount": 0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_AMOUNT", decodeBody(t, resp)["code"])
}

func TestUpdateAmount_NoEnCarritoResponde404(t *testing.T) {
	app, _ := buildTestApp(t, map[int]int{1: 5})

	resp := doRequest(t, app, http.MethodPut, "/api/cart/products/1", `{"amount": 2}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_IN_CART", decodeBody(t, resp)["code"])
}

func TestRemoveProduct_DevuelveCarritoSinLaLinea(t *testing.T) {
	app, stock := buildTestApp(t, map[int]int{1: 5, 2: 5})
	doRequest(t, app, http.MethodPost, "/api/cart/products/1", "").Body.Close()
	doRequest(t, app, http.MethodPost, "/api/cart/products/2", "").Body.Close()

	resp := doRequest(t, app, http.MethodDelete, "/api/cart/products/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["id"])
	// La unidad reservada volvió al inventario
	assert.Equal(t, 5, stock.amounts[1])
}

func TestRemoveProduct_NoEnCarritoResponde404(t *testing.T) {
	app, _ := buildTestApp(t, map[int]int{})

	resp := doRequest(t, app, http.MethodDelete, "/api/cart/products/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_IN_CART", decodeBody(t, resp)["code"])
}
