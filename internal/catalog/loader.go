// Package catalog loads the product list and implements search, category
// filtering and pagination over it.
package catalog

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/monitor"
)

// ProductLister is satisfied by *commerce.Client.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// Loader fetches the catalog from the API and substitutes the fallback
// catalog on any failure. It never returns an error.
type Loader struct {
	api      ProductLister
	timeout  time.Duration
	sfg      singleflight.Group // collapses concurrent page loads
	cb       *gobreaker.CircuitBreaker[[]domain.Product]
	reporter monitor.Reporter
	log      *zap.Logger
}

func NewLoader(api ProductLister, timeout time.Duration, reporter monitor.Reporter, log *zap.Logger) *Loader {
	return &Loader{
		api:      api,
		timeout:  timeout,
		reporter: reporter,
		log:      log,
		cb: gobreaker.NewCircuitBreaker[[]domain.Product](gobreaker.Settings{
			Name:    "products-api",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Info("circuit breaker state changed",
					zap.String("name", name), zap.Stringer("from", from), zap.Stringer("to", to))
			},
		}),
	}
}

// FetchProducts returns the remote catalog verbatim, or the fallback
// catalog when the call fails, times out or the breaker is open.
func (l *Loader) FetchProducts(ctx context.Context) []domain.Product {
	v, _, _ := l.sfg.Do("products", func() (interface{}, error) {
		// one caller going away must not fail the others sharing this call
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()

		products, err := l.cb.Execute(func() ([]domain.Product, error) {
			return l.api.ListProducts(callCtx)
		})
		if err != nil {
			l.log.Warn("products API unavailable, serving fallback catalog", zap.Error(err))
			l.reporter.ReportDegraded(monitor.SourceCatalog, err)
			return FallbackProducts(), nil
		}

		l.reporter.ReportHealthy(monitor.SourceCatalog)
		return products, nil
	})

	shared := v.([]domain.Product)
	out := make([]domain.Product, len(shared))
	copy(out, shared)
	return out
}
