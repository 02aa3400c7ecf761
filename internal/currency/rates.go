package currency

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/exchange"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/monitor"
)

var (
	// 600000 GNF for 72 USD
	homePerUSD = decimal.NewFromInt(600000).Div(decimal.NewFromInt(72))

	fallbackUSD = decimal.RequireFromString("8333.33")
	fallbackEUR = decimal.RequireFromString("9230.77")
)

// Rates is an immutable snapshot of home-currency units per unit of each
// currency. The home currency is always 1.
type Rates struct {
	values map[domain.Currency]decimal.Decimal
}

func newRates(usd, eur decimal.Decimal) Rates {
	return Rates{values: map[domain.Currency]decimal.Decimal{
		domain.CurrencyGNF: decimal.NewFromInt(1),
		domain.CurrencyUSD: usd,
		domain.CurrencyEUR: eur,
	}}
}

// FallbackRates are used until a refresh succeeds.
func FallbackRates() Rates {
	return newRates(fallbackUSD, fallbackEUR)
}

// Rate returns the multiplier for c. Unknown currencies get 1.
func (r Rates) Rate(c domain.Currency) decimal.Decimal {
	if v, ok := r.values[c]; ok {
		return v
	}
	return decimal.NewFromInt(1)
}

// Values returns a copy keyed by currency code.
func (r Rates) Values() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.values))
	for c, v := range r.values {
		out[c.String()] = v
	}
	return out
}

// USDRatesFetcher is satisfied by *exchange.Client.
type USDRatesFetcher interface {
	LatestUSD(ctx context.Context) (*exchange.LatestResponse, error)
}

// RateSource holds the process-wide rate snapshot. Refresh replaces the
// snapshot wholesale; a failed refresh keeps the previous one.
type RateSource struct {
	fetcher  USDRatesFetcher
	timeout  time.Duration
	cb       *gobreaker.CircuitBreaker[*exchange.LatestResponse]
	current  atomic.Pointer[Rates]
	reporter monitor.Reporter
	log      *zap.Logger
}

func NewRateSource(fetcher USDRatesFetcher, timeout time.Duration, reporter monitor.Reporter, log *zap.Logger) *RateSource {
	s := &RateSource{
		fetcher:  fetcher,
		timeout:  timeout,
		reporter: reporter,
		log:      log,
		cb: gobreaker.NewCircuitBreaker[*exchange.LatestResponse](gobreaker.Settings{
			Name:    "exchange-rates",
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Info("circuit breaker state changed",
					zap.String("name", name), zap.Stringer("from", from), zap.Stringer("to", to))
			},
		}),
	}
	fallback := FallbackRates()
	s.current.Store(&fallback)
	return s
}

func (s *RateSource) Rates() Rates {
	return *s.current.Load()
}

// Refresh fetches the USD table and derives USD and EUR from the fixed
// anchor. Failures are logged and reported as degraded, never returned.
func (s *RateSource) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	latest, err := s.cb.Execute(func() (*exchange.LatestResponse, error) {
		return s.fetcher.LatestUSD(ctx)
	})
	var eur float64
	if err == nil {
		eur, err = latest.Rate(domain.CurrencyEUR.String())
	}
	if err != nil {
		s.log.Warn("exchange rate refresh failed, keeping last known rates", zap.Error(err))
		s.reporter.ReportDegraded(monitor.SourceRates, err)
		return
	}

	rates := newRates(homePerUSD, homePerUSD.Div(decimal.NewFromFloat(eur)))
	s.current.Store(&rates)
	s.reporter.ReportHealthy(monitor.SourceRates)
	s.log.Debug("exchange rates refreshed", zap.String("eur", rates.Rate(domain.CurrencyEUR).StringFixed(2)))
}
