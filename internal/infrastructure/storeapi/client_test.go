package storeapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/infrastructure/storeapi"
)

// servidor de tienda falso: un producto (id 1) con stock 4
func newStoreServer(t *testing.T) (*httptest.Server, *map[string]any) {
	t.Helper()
	var lastPut map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("GET /stock/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"amount": 4})
	})
	mux.HandleFunc("PUT /stock/1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastPut))
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /products/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":    1,
			"title": "Tênis de Caminhada Leve",
			"price": 179.9,
			"image": "https://tienda.test/tenis.jpg",
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return httptest.NewServer(mux), &lastPut
}

func TestGetStock(t *testing.T) {
	srv, _ := newStoreServer(t)
	defer srv.Close()
	client := storeapi.NewClient(srv.URL, 5*time.Second)

	stk, err := client.GetStock(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, entity.Stock{ProductID: 1, Amount: 4}, stk)
}

func TestGetStock_NoEncontrado(t *testing.T) {
	srv, _ := newStoreServer(t)
	defer srv.Close()
	client := storeapi.NewClient(srv.URL, 5*time.Second)

	_, err := client.GetStock(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrStockUnavailable)
}

func TestPutStock_EnviaLaCantidad(t *testing.T) {
	srv, lastPut := newStoreServer(t)
	defer srv.Close()
	client := storeapi.NewClient(srv.URL, 5*time.Second)

	err := client.PutStock(context.Background(), entity.Stock{ProductID: 1, Amount: 3})
	require.NoError(t, err)
	require.NotNil(t, *lastPut)
	assert.Equal(t, float64(3), (*lastPut)["amount"])
}

func TestPutStock_ErrorDeServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	client := storeapi.NewClient(srv.URL, 5*time.Second)

	err := client.PutStock(context.Background(), entity.Stock{ProductID: 1, Amount: 3})
	assert.Error(t, err)
}

func TestGetProduct(t *testing.T) {
	srv, _ := newStoreServer(t)
	defer srv.Close()
	client := storeapi.NewClient(srv.URL, 5*time.Second)

	product, err := client.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "Tênis de Caminhada Leve", product.Title)
	assert.Equal(t, "https://tienda.test/tenis.jpg", product.Image)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(179.9)), "price %s", product.Price)
}

func TestGetProduct_NoEncontrado(t *testing.T) {
	srv, _ := newStoreServer(t)
	defer srv.Close()
	client := storeapi.NewClient(srv.URL, 5*time.Second)

	_, err := client.GetProduct(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
