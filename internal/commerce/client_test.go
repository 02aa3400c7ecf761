package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
)

func TestListProducts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/products", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"category":"Cosmétique","name":"Huile","price":45000,"description":null,"photo":"images/products/huile.webp","status":"STOCK","created_at":"2025-06-03T22:18:41.000000Z","updated_at":"2025-06-08T03:59:06.000000Z","deleted_at":null}]`))
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Huile", products[0].Name)
	assert.Nil(t, products[0].Description)
	assert.True(t, products[0].InStock())
}

func TestListProducts_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestListProducts_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListProducts(context.Background())
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestCreateOrder_Accepted(t *testing.T) {
	var got domain.OrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	order := domain.NewOrderRequest(
		domain.CustomerInfo{Customer: "Awa", Phone: "+224620879890", Address: "Kaloum"},
		[]domain.CartItem{{ID: 2, Quantity: 3}},
	)
	require.NoError(t, NewClient(srv.URL+"/").CreateOrder(context.Background(), order))
	assert.Equal(t, order, got)
}

func TestCreateOrder_RejectedStatus(t *testing.T) {
	for _, code := range []int{http.StatusAccepted, http.StatusBadRequest, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		err := NewClient(srv.URL).CreateOrder(context.Background(), domain.OrderRequest{})
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr), "status %d", code)
		assert.Equal(t, code, statusErr.StatusCode)
		srv.Close()
	}
}

func TestCreateOrder_DeadlineExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewClient(srv.URL).CreateOrder(ctx, domain.OrderRequest{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestImageURL(t *testing.T) {
	c := NewClient("https://api.groupmafamo.com")

	assert.Equal(t, "https://groupmafamo.com/images/products/huile.webp",
		c.ImageURL("https://groupmafamo.com/images/products/huile.webp"))
	assert.Equal(t, "https://api.groupmafamo.com/images/products/huile.webp",
		c.ImageURL("images/products/huile.webp"))
	assert.Equal(t, "", c.ImageURL(""))
}
