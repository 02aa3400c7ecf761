package currency

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

// markup is applied on every conversion, home currency included.
var markup = decimal.RequireFromString("1.10")

// RatesProvider is satisfied by *RateSource.
type RatesProvider interface {
	Rates() Rates
}

// Converter holds one visitor's selected currency.
type Converter struct {
	mu       sync.RWMutex
	selected domain.Currency
	rates    RatesProvider
	bridge   *storage.Bridge
}

// NewConverter restores the saved currency when it is valid, otherwise the
// home currency is selected.
func NewConverter(ctx context.Context, bridge *storage.Bridge, rates RatesProvider) *Converter {
	c := &Converter{selected: domain.HomeCurrency, rates: rates, bridge: bridge}
	if saved, ok := bridge.Get(ctx, domain.KeyCurrency); ok {
		if code := domain.Currency(saved); code.Valid() {
			c.selected = code
		}
	}
	return c
}

func (c *Converter) Currency() domain.Currency {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

// SetCurrency selects and persists code. Unknown codes are rejected and the
// selection is left unchanged.
func (c *Converter) SetCurrency(ctx context.Context, code string) error {
	cur := domain.Currency(code)
	if !cur.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = cur
	c.bridge.Set(ctx, domain.KeyCurrency, cur.String())
	return nil
}

// ConvertPrice converts a home-currency amount into the selected currency,
// markup included.
func (c *Converter) ConvertPrice(amount int64) decimal.Decimal {
	return convert(amount, c.rates.Rates().Rate(c.Currency()))
}

// FormatPrice converts amount and renders it for the selected currency.
func (c *Converter) FormatPrice(amount int64) string {
	cur := c.Currency()
	return Format(cur, convert(amount, c.rates.Rates().Rate(cur)))
}

func convert(amount int64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(rate).Mul(markup)
}

// Format renders an already converted value: en-US dollars, fr-FR euros and
// grouped whole GNF with a trailing code.
func Format(cur domain.Currency, v decimal.Decimal) string {
	switch cur {
	case domain.CurrencyUSD:
		p := message.NewPrinter(language.AmericanEnglish)
		return "$" + p.Sprintf("%v", number.Decimal(v.Round(2).InexactFloat64(), number.Scale(2)))
	case domain.CurrencyEUR:
		p := message.NewPrinter(language.French)
		return p.Sprintf("%v", number.Decimal(v.Round(2).InexactFloat64(), number.Scale(2))) + "\u00a0€"
	default:
		p := message.NewPrinter(language.French)
		return p.Sprintf("%v", number.Decimal(v.Round(0).InexactFloat64(), number.Scale(0))) + " GNF"
	}
}
