package http

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/catalog"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/checkout"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home.html", "product.html", "cart.html"}

type PageHandler struct {
	catalog  Catalog
	images   ImageResolver
	sessions Sessions
	pages    map[string]*template.Template
	contact  string
	timeout  time.Duration
	log      *zap.Logger
}

// NewPageHandler parses the page templates. contact is the shop's phone
// number shown in the header and footer.
func NewPageHandler(cat Catalog, images ImageResolver, sessions Sessions, contact string,
	timeout time.Duration, log *zap.Logger) (*PageHandler, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &PageHandler{
		catalog:  cat,
		images:   images,
		sessions: sessions,
		pages:    pages,
		contact:  contact,
		timeout:  timeout,
		log:      log,
	}, nil
}

// view is the data every page template receives. Its methods are the
// template helpers.
type view struct {
	sess    *session.Session
	images  ImageResolver
	Contact string
	Data    interface{}
}

func (v view) T(key string) string       { return v.sess.Language.T(i18n.Key(key)) }
func (v view) Price(amount int64) string { return v.sess.Currency.FormatPrice(amount) }
func (v view) Image(photo string) string { return v.images.ImageURL(photo) }
func (v view) Theme() string             { return string(v.sess.Theme.Theme()) }
func (v view) Language() string          { return string(v.sess.Language.Language()) }
func (v view) Currency() string          { return v.sess.Currency.Currency().String() }
func (v view) CartCount() int            { return v.sess.Cart.ItemsCount() }

func (v view) Currencies() []domain.Currency {
	return []domain.Currency{domain.CurrencyGNF, domain.CurrencyUSD, domain.CurrencyEUR}
}

func (v view) Languages() []domain.Language {
	return []domain.Language{domain.LanguageFR, domain.LanguageEN}
}

type homeData struct {
	Search     string
	Category   string
	Categories []string
	Page       catalog.Page
}

func (d homeData) pageURL(page int) string {
	q := url.Values{}
	if d.Search != "" {
		q.Set("search", d.Search)
	}
	if !catalog.IsAllCategories(d.Category) {
		q.Set("category", d.Category)
	}
	q.Set("page", strconv.Itoa(page))
	return "/?" + q.Encode()
}

func (d homeData) PreviousURL() string { return d.pageURL(d.Page.Page - 1) }
func (d homeData) NextURL() string     { return d.pageURL(d.Page.Page + 1) }

// CategoryURL selects a category and resets to the first page.
func (d homeData) CategoryURL(category string) string {
	q := url.Values{}
	if d.Search != "" {
		q.Set("search", d.Search)
	}
	if category != "" {
		q.Set("category", category)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func (d homeData) AllCategories() bool { return catalog.IsAllCategories(d.Category) }

type productData struct {
	Product domain.Product
	Found   bool
}

type cartData struct {
	Items   []domain.CartItem
	Total   int64
	Form    domain.CustomerInfo
	Success bool
	Message string
	// Field is the form field the validation message refers to.
	Field string
}

func (d cartData) Empty() bool { return len(d.Items) == 0 }

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, v view) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.pages[name].ExecuteTemplate(w, "layout", v); err != nil {
		h.log.Error("failed to render page", zap.String("page", name), zap.Error(err))
	}
}

func (h *PageHandler) view(sess *session.Session, data interface{}) view {
	return view{sess: sess, images: h.images, Contact: h.contact, Data: data}
}

func (h *PageHandler) session(ctx context.Context) *session.Session {
	return h.sessions.Get(ctx, VisitorID(ctx))
}

// Home handles GET /?search=&category=&page=
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}

	products := h.catalog.FetchProducts(ctx)
	data := homeData{
		Search:     q.Get("search"),
		Category:   q.Get("category"),
		Categories: catalog.Categories(products),
	}
	data.Page = catalog.Paginate(catalog.Filter(products, data.Search, data.Category), page)

	h.render(w, http.StatusOK, "home.html", h.view(h.session(ctx), data))
}

// Product handles GET /product/{id}
func (h *PageHandler) Product(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := h.session(ctx)

	var data productData
	if id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err == nil {
		data.Product, data.Found = catalog.Find(h.catalog.FetchProducts(ctx), id)
	}

	status := http.StatusOK
	if !data.Found {
		status = http.StatusNotFound
	}
	h.render(w, status, "product.html", h.view(sess, data))
}

// Cart handles GET /cart
func (h *PageHandler) Cart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := h.session(ctx)
	data := h.cartData(sess)

	status, msg := sess.Checkout.Status()
	if status == domain.CheckoutStatusSuccess {
		data.Success = true
		data.Message = msg
		sess.Checkout.Acknowledge()
	}

	h.render(w, http.StatusOK, "cart.html", h.view(sess, data))
}

func (h *PageHandler) cartData(sess *session.Session) cartData {
	return cartData{
		Items: sess.Cart.Items(),
		Total: sess.Cart.Total(),
	}
}

// AddToCart handles the product form: POST /cart/items
func (h *PageHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(r.PostForm.Get("product_id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	qty, _ := strconv.Atoi(r.PostForm.Get("quantity"))
	if qty > maxQuantity {
		qty = maxQuantity
	}

	product, ok := catalog.Find(h.catalog.FetchProducts(ctx), id)
	if !ok || !product.InStock() {
		http.Redirect(w, r, "/product/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}

	h.session(ctx).Cart.AddToCart(ctx, product.CartItem(qty), qty)
	redirectBack(w, r, "/cart")
}

// UpdateQuantity handles POST /cart/items/{id}/quantity
func (h *PageHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	qty, err := strconv.Atoi(r.PostForm.Get("quantity"))
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}
	if qty > maxQuantity {
		qty = maxQuantity
	}

	h.session(ctx).Cart.UpdateQuantity(ctx, id, qty)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// RemoveFromCart handles POST /cart/items/{id}/remove
func (h *PageHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.session(ctx).Cart.RemoveFromCart(ctx, id)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Checkout handles the cart form: POST /checkout. action=whatsapp
// redirects to the WhatsApp link once the order is recorded.
func (h *PageHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	info := domain.CustomerInfo{
		Customer: r.PostForm.Get("customer"),
		Phone:    r.PostForm.Get("phone"),
		Email:    r.PostForm.Get("email"),
		Address:  r.PostForm.Get("address"),
	}

	ctx := r.Context()
	sess := h.session(ctx)
	data := h.cartData(sess)

	var err error
	if r.PostForm.Get("action") == "whatsapp" {
		var link string
		link, _, err = sess.Checkout.SubmitViaWhatsApp(ctx, info)
		if err == nil {
			http.Redirect(w, r, link, http.StatusSeeOther)
			return
		}
	} else {
		var res *checkout.Result
		res, err = sess.Checkout.Submit(ctx, info)
		if err == nil {
			data.Success = true
			data.Message = res.Message
			sess.Checkout.Acknowledge()
			h.render(w, http.StatusOK, "cart.html", h.view(sess, data))
			return
		}
	}

	status, _, msg, field := checkoutFailure(sess, err)
	data.Form = info
	data.Message = msg
	data.Field = field
	h.render(w, status, "cart.html", h.view(sess, data))
}

// Preferences handles the header form: POST /preferences. Unknown values
// are ignored.
func (h *PageHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess := h.session(ctx)
	if c := r.PostForm.Get("currency"); c != "" {
		_ = sess.Currency.SetCurrency(ctx, c)
	}
	if l := r.PostForm.Get("language"); l != "" {
		_ = sess.Language.SetLanguage(ctx, l)
	}
	if r.PostForm.Get("toggle_theme") != "" {
		sess.Theme.Toggle(ctx)
	}

	redirectBack(w, r, "/")
}

// redirectBack returns to the referring page of this site, or fallback.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	ref, err := url.Parse(r.Referer())
	if err == nil && (ref.Host == "" || ref.Host == r.Host) &&
		strings.HasPrefix(ref.Path, "/") && !strings.HasPrefix(ref.Path, "//") {
		target = ref.Path
		if ref.RawQuery != "" {
			target += "?" + ref.RawQuery
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
