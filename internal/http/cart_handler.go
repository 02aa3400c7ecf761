package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/catalog"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/session"
)

type CartHandler struct {
	catalog  Catalog
	images   ImageResolver
	sessions Sessions
	timeout  time.Duration
}

func NewCartHandler(cat Catalog, images ImageResolver, sessions Sessions, timeout time.Duration) *CartHandler {
	return &CartHandler{
		catalog:  cat,
		images:   images,
		sessions: sessions,
		timeout:  timeout,
	}
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	Quantity        int    `json:"quantity"`
	Subtotal        int64  `json:"subtotal"`
	DisplayPrice    string `json:"display_price"`
	DisplaySubtotal string `json:"display_subtotal"`
	ImageURL        string `json:"image_url"`
}

type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	ItemsCount   int                `json:"items_count"`
	Total        int64              `json:"total"`
	DisplayTotal string             `json:"display_total"`
	Currency     string             `json:"currency"`
}

func toCartResponse(sess *session.Session, images ImageResolver) CartResponse {
	items := sess.Cart.Items()
	total := sess.Cart.Total()

	resp := CartResponse{
		Items:        make([]CartItemResponse, 0, len(items)),
		ItemsCount:   sess.Cart.ItemsCount(),
		Total:        total,
		DisplayTotal: sess.Currency.FormatPrice(total),
		Currency:     sess.Currency.Currency().String(),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:              item.ID,
			Name:            item.Name,
			Price:           item.Price,
			Quantity:        item.Quantity,
			Subtotal:        item.Subtotal(),
			DisplayPrice:    sess.Currency.FormatPrice(item.Price),
			DisplaySubtotal: sess.Currency.FormatPrice(item.Subtotal()),
			ImageURL:        images.ImageURL(item.Photo),
		})
	}
	return resp
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	respondJSON(w, http.StatusOK, toCartResponse(sess, h.images))
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "Product ID must be positive")
		return
	}

	// a missing or non-positive quantity adds one unit
	if req.Quantity > maxQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "Quantity must be at most 99")
		return
	}

	sess := h.sessions.Get(ctx, VisitorID(ctx))

	product, ok := catalog.Find(h.catalog.FetchProducts(ctx), req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "product_not_found", sess.Language.T(i18n.KeyProductNotFound))
		return
	}
	if !product.InStock() {
		respondError(w, http.StatusConflict, "out_of_stock", "Product is not in stock")
		return
	}

	sess.Cart.AddToCart(ctx, product.CartItem(req.Quantity), req.Quantity)
	respondJSON(w, http.StatusOK, toCartResponse(sess, h.images))
}

// UpdateItem handles PUT /api/v1/cart/items/{id}. A quantity of zero or
// less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "Invalid product ID")
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.Quantity > maxQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "Quantity must be at most 99")
		return
	}

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	sess.Cart.UpdateQuantity(ctx, productID, req.Quantity)
	respondJSON(w, http.StatusOK, toCartResponse(sess, h.images))
}

// RemoveItem handles DELETE /api/v1/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "Invalid product ID")
		return
	}

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	sess.Cart.RemoveFromCart(ctx, productID)
	respondJSON(w, http.StatusOK, toCartResponse(sess, h.images))
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	sess.Cart.ClearCart(ctx)
	w.WriteHeader(http.StatusNoContent)
}
