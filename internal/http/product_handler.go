package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/catalog"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/session"
)

type ProductHandler struct {
	catalog  Catalog
	images   ImageResolver
	sessions Sessions
	timeout  time.Duration
}

func NewProductHandler(cat Catalog, images ImageResolver, sessions Sessions, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog:  cat,
		images:   images,
		sessions: sessions,
		timeout:  timeout,
	}
}

type ProductResponse struct {
	ID           int64   `json:"id"`
	Category     string  `json:"category"`
	Name         string  `json:"name"`
	Price        int64   `json:"price"`
	DisplayPrice string  `json:"display_price"`
	Description  *string `json:"description"`
	ImageURL     string  `json:"image_url"`
	Status       string  `json:"status"`
	InStock      bool    `json:"in_stock"`
}

type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
	Currency   string            `json:"currency"`
}

func toProductResponse(p domain.Product, sess *session.Session, images ImageResolver) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Category:     p.Category,
		Name:         p.Name,
		Price:        p.Price,
		DisplayPrice: sess.Currency.FormatPrice(p.Price),
		Description:  p.Description,
		ImageURL:     images.ImageURL(p.Photo),
		Status:       p.Status,
		InStock:      p.InStock(),
	}
}

// ListProducts handles GET /api/v1/products?search=&category=&page=
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_page", "page must be a number")
			return
		}
		page = n
	}

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	products := catalog.Filter(h.catalog.FetchProducts(ctx), r.URL.Query().Get("search"), r.URL.Query().Get("category"))
	p := catalog.Paginate(products, page)

	resp := ProductPageResponse{
		Items:      make([]ProductResponse, 0, len(p.Items)),
		Page:       p.Page,
		TotalPages: p.TotalPages,
		Total:      p.Total,
		Currency:   sess.Currency.Currency().String(),
	}
	for _, product := range p.Items {
		resp.Items = append(resp.Items, toProductResponse(product, sess, h.images))
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "Invalid product ID")
		return
	}

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	product, ok := catalog.Find(h.catalog.FetchProducts(ctx), productID)
	if !ok {
		respondError(w, http.StatusNotFound, "product_not_found", sess.Language.T(i18n.KeyProductNotFound))
		return
	}

	respondJSON(w, http.StatusOK, toProductResponse(product, sess, h.images))
}

// ListCategories handles GET /api/v1/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	respondJSON(w, http.StatusOK, map[string][]string{
		"categories": catalog.Categories(h.catalog.FetchProducts(ctx)),
	})
}
