package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/currency"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/session"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/theme"
)

type PreferencesHandler struct {
	sessions Sessions
	rates    currency.RatesProvider
	timeout  time.Duration
}

func NewPreferencesHandler(sessions Sessions, rates currency.RatesProvider, timeout time.Duration) *PreferencesHandler {
	return &PreferencesHandler{
		sessions: sessions,
		rates:    rates,
		timeout:  timeout,
	}
}

type PreferencesResponse struct {
	Currency string                     `json:"currency"`
	Language string                     `json:"language"`
	Theme    string                     `json:"theme"`
	Rates    map[string]decimal.Decimal `json:"rates"`
}

type CurrencyRequest struct {
	Currency string `json:"currency"`
}

type LanguageRequest struct {
	Language string `json:"language"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

func (h *PreferencesHandler) preferences(sess *session.Session) PreferencesResponse {
	return PreferencesResponse{
		Currency: sess.Currency.Currency().String(),
		Language: string(sess.Language.Language()),
		Theme:    string(sess.Theme.Theme()),
		Rates:    h.rates.Rates().Values(),
	}
}

// GetPreferences handles GET /api/v1/preferences
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	respondJSON(w, http.StatusOK, h.preferences(sess))
}

// SetCurrency handles PUT /api/v1/preferences/currency
func (h *PreferencesHandler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	if err := sess.Currency.SetCurrency(ctx, req.Currency); err != nil {
		if errors.Is(err, currency.ErrUnsupportedCurrency) {
			respondError(w, http.StatusBadRequest, "unsupported_currency", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to set currency")
		return
	}

	respondJSON(w, http.StatusOK, h.preferences(sess))
}

// SetLanguage handles PUT /api/v1/preferences/language
func (h *PreferencesHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req LanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	if err := sess.Language.SetLanguage(ctx, req.Language); err != nil {
		if errors.Is(err, i18n.ErrUnsupportedLanguage) {
			respondError(w, http.StatusBadRequest, "unsupported_language", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to set language")
		return
	}

	respondJSON(w, http.StatusOK, h.preferences(sess))
}

// SetTheme handles PUT /api/v1/preferences/theme
func (h *PreferencesHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	if err := sess.Theme.SetTheme(ctx, req.Theme); err != nil {
		if errors.Is(err, theme.ErrUnsupportedTheme) {
			respondError(w, http.StatusBadRequest, "unsupported_theme", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to set theme")
		return
	}

	respondJSON(w, http.StatusOK, h.preferences(sess))
}

// ToggleTheme handles POST /api/v1/preferences/theme/toggle
func (h *PreferencesHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := h.sessions.Get(ctx, VisitorID(ctx))
	sess.Theme.Toggle(ctx)
	respondJSON(w, http.StatusOK, h.preferences(sess))
}

// Translations handles GET /api/v1/translations?lang=. Without lang the
// visitor's current language is used.
func (h *PreferencesHandler) Translations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	lang := domain.Language(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = h.sessions.Get(ctx, VisitorID(ctx)).Language.Language()
	}
	if !lang.Valid() {
		respondError(w, http.StatusBadRequest, "unsupported_language", i18n.ErrUnsupportedLanguage.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"language": lang,
		"messages": i18n.Table(lang),
	})
}
