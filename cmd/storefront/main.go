package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/catalog"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/checkout"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/commerce"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/config"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/currency"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/events"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/exchange"
	h "github.com/Yamoon224/YAYAH-LIVRAISON/internal/http"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/logger"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/monitor"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/session"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

const (
	sessionSweepInterval = 10 * time.Minute
	sessionMaxIdle       = 24 * time.Hour
	routerTimeout        = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logg.Fatal("failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer closeStore()
	logg.Info("storage ready", zap.String("driver", cfg.StorageDriver))

	publisher, err := newPublisher(cfg)
	if err != nil {
		logg.Fatal("failed to create event publisher", zap.String("driver", cfg.EventsDriver), zap.Error(err))
	}
	defer publisher.Close()

	dataHealth := monitor.NewDataHealth()
	defer dataHealth.Shutdown()

	// Rates are fetched once at startup; until then the fallback table is used.
	rates := currency.NewRateSource(exchange.NewClient(cfg.ExchangeBaseURL, cfg.RatesTimeout), cfg.RatesTimeout, dataHealth, logg)
	go rates.Refresh(ctx)

	api := commerce.NewClient(cfg.APIBaseURL)
	products := catalog.NewLoader(api, cfg.CatalogTimeout, dataHealth, logg)

	sessions := session.NewManager(storage.NewBridge(store, logg), rates, api, publisher, checkout.Config{
		SimulateOrders: cfg.SimulateOrders,
		SimulatedDelay: cfg.SimulatedDelay,
		OrderTimeout:   cfg.OrderTimeout,
		ClearDelay:     cfg.ClearCartDelay,
		WhatsAppNumber: cfg.WhatsAppNumber,
	}, logg)
	go sessions.Run(ctx, sessionSweepInterval, sessionMaxIdle)

	pages, err := h.NewPageHandler(products, api, sessions, "+"+cfg.WhatsAppNumber, cfg.RequestTimeout, logg)
	if err != nil {
		logg.Fatal("failed to load page templates", zap.Error(err))
	}

	router := h.NewRouter(h.RouterConfig{
		Products:       h.NewProductHandler(products, api, sessions, cfg.RequestTimeout),
		Cart:           h.NewCartHandler(products, api, sessions, cfg.RequestTimeout),
		Preferences:    h.NewPreferencesHandler(sessions, rates, cfg.RequestTimeout),
		Checkout:       h.NewCheckoutHandler(sessions),
		Pages:          pages,
		Health:         h.NewHealthHandler(dataHealth, "storefront"),
		RequestTimeout: routerTimeout,
		Log:            logg,
	})

	if cfg.AdminGRPCPort != "" {
		admin, err := monitor.NewAdminServer(cfg.AdminGRPCPort, dataHealth, logg)
		if err != nil {
			logg.Fatal("failed to start admin server", zap.Error(err))
		}
		go func() {
			if err := admin.Serve(); err != nil {
				logg.Error("admin server stopped", zap.Error(err))
			}
		}()
		defer admin.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: routerTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logg.Info("storefront starting", zap.String("addr", srv.Addr), zap.Bool("simulate_orders", cfg.SimulateOrders))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logg.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("server forced to shutdown", zap.Error(err))
	}

	logg.Info("server exited")
}

// openStore connects the backend selected by STORAGE_DRIVER. The returned
// func releases it.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		return storage.NewRedisStore(client), func() { client.Close() }, nil

	case "sqlite", "postgres":
		store, err := storage.NewSQLStore(cfg.StorageDriver, cfg.SQLDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := store.RunMigrations(); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	case "mongo":
		db, err := storage.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewMongoStore(db), func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			db.Client().Disconnect(ctx)
		}, nil

	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}

func newPublisher(cfg *config.Config) (events.Publisher, error) {
	switch cfg.EventsDriver {
	case "kafka":
		return events.NewKafkaPublisher(cfg.Brokers()...), nil
	case "rabbitmq":
		return events.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
	default:
		return events.NopPublisher{}, nil
	}
}
