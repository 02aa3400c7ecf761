package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/checkout"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/session"
)

// CheckoutHandler has no timeout of its own: the flow bounds the order call.
type CheckoutHandler struct {
	sessions Sessions
}

func NewCheckoutHandler(sessions Sessions) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions}
}

type CheckoutResponse struct {
	Order       domain.OrderRecord `json:"order"`
	Message     string             `json:"message"`
	WhatsAppURL string             `json:"whatsapp_url,omitempty"`
}

type CheckoutStatusResponse struct {
	Status  domain.CheckoutStatus `json:"status"`
	Message string                `json:"message,omitempty"`
}

// Submit handles POST /api/v1/checkout
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var info domain.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	sess := h.sessions.Get(r.Context(), VisitorID(r.Context()))
	res, err := sess.Checkout.Submit(r.Context(), info)
	if err != nil {
		respondCheckoutError(w, sess, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponse{
		Order:   res.Order,
		Message: res.Message,
	})
}

// SubmitViaWhatsApp handles POST /api/v1/checkout/whatsapp
func (h *CheckoutHandler) SubmitViaWhatsApp(w http.ResponseWriter, r *http.Request) {
	var info domain.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	sess := h.sessions.Get(r.Context(), VisitorID(r.Context()))
	link, res, err := sess.Checkout.SubmitViaWhatsApp(r.Context(), info)
	if err != nil {
		respondCheckoutError(w, sess, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponse{
		Order:       res.Order,
		Message:     res.Message,
		WhatsAppURL: link,
	})
}

// Status handles GET /api/v1/checkout/status
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r.Context(), VisitorID(r.Context()))
	status, msg := sess.Checkout.Status()
	respondJSON(w, http.StatusOK, CheckoutStatusResponse{Status: status, Message: msg})
}

// ListOrders handles GET /api/v1/orders
func (h *CheckoutHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r.Context(), VisitorID(r.Context()))
	respondJSON(w, http.StatusOK, map[string][]domain.OrderRecord{
		"orders": sess.Checkout.History(r.Context()),
	})
}

// checkoutFailure maps a submission error to a status, a code and the
// localized message shown to the visitor.
func checkoutFailure(sess *session.Session, err error) (int, string, string, string) {
	var (
		validationErr *checkout.ValidationError
		transportErr  *checkout.TransportError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, "validation_error", sess.Language.T(validationErr.Key), validationErr.Field
	case errors.Is(err, checkout.ErrEmptyCart):
		return http.StatusConflict, "empty_cart", sess.Language.T(i18n.KeyCartIsEmpty), ""
	case errors.Is(err, checkout.ErrSubmitInProgress):
		return http.StatusConflict, "submit_in_progress", sess.Language.T(i18n.KeySubmitInProgress), ""
	case errors.As(err, &transportErr):
		status := http.StatusBadGateway
		if transportErr.Kind == checkout.KindTimeout {
			status = http.StatusGatewayTimeout
		}
		return status, transportErr.Kind.String(), transportErr.Message(sess.Language), ""
	default:
		return http.StatusInternalServerError, "internal_error", sess.Language.T(i18n.KeyErrUnexpected), ""
	}
}

func respondCheckoutError(w http.ResponseWriter, sess *session.Session, err error) {
	status, code, msg, details := checkoutFailure(sess, err)
	respondErrorDetails(w, status, code, msg, details)
}
