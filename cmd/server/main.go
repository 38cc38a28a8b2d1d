package main

import (
	"context"
	"encoding/json"
	"time"

	_ "github.com/flexprice/taxengine/docs/swagger"
	"github.com/flexprice/taxengine/internal/api"
	v1 "github.com/flexprice/taxengine/internal/api/v1"
	"github.com/flexprice/taxengine/internal/config"
	"github.com/flexprice/taxengine/internal/logger"
	"github.com/flexprice/taxengine/internal/publisher"
	"github.com/flexprice/taxengine/internal/pubsub"
	"github.com/flexprice/taxengine/internal/pubsub/kafka"
	"github.com/flexprice/taxengine/internal/pubsub/memory"
	"github.com/flexprice/taxengine/internal/sentry"
	"github.com/flexprice/taxengine/internal/service"
	"github.com/flexprice/taxengine/internal/types"
	"github.com/flexprice/taxengine/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title Tax Engine API
// @version 1.0
// @description Indonesian PPN and PPh calculation for the sales and purchase flows
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Notifications
			providePubSub,
			publisher.NewTaxEventPublisher,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewTaxCalculationService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			validator.NewValidator,
			sentry.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func providePubSub(lc fx.Lifecycle, cfg *config.Configuration, log *logger.Logger) (pubsub.PubSub, error) {
	var (
		ps  pubsub.PubSub
		err error
	)

	switch cfg.Events.PubSub {
	case types.KafkaPubSub:
		ps, err = kafka.NewPubSub(cfg, log)
		if err != nil {
			return nil, err
		}
	default:
		ps = memory.NewPubSub(log)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing tax notification pubsub")
			return ps.Close()
		},
	})
	return ps, nil
}

func provideHandlers(
	logger *logger.Logger,
	taxService service.TaxCalculationService,
) api.Handlers {
	return api.Handlers{
		Health: v1.NewHealthHandler(logger),
		Tax:    v1.NewTaxHandler(taxService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger, sentryService *sentry.Service) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger, sentryService)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	ps pubsub.PubSub,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		startAPIServer(lc, r, cfg, log)
		if cfg.Events.Enabled {
			startNotificationTail(lc, ps, cfg, log)
		}
	case types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

// startNotificationTail logs every tax.calculated notification, so local
// runs show what the sales and purchase pages would receive.
func startNotificationTail(
	lc fx.Lifecycle,
	ps pubsub.PubSub,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			messages, err := ps.Subscribe(ctx, cfg.Events.Topic)
			if err != nil {
				cancel()
				return err
			}

			go func() {
				for msg := range messages {
					var event publisher.TaxCalculatedEvent
					if err := json.Unmarshal(msg.Payload, &event); err != nil {
						log.Errorw("failed to decode tax notification", "error", err, "message_uuid", msg.UUID)
						msg.Ack()
						continue
					}
					log.Infow("tax notification",
						"event_id", event.ID,
						"flow", event.Flow,
						"request_id", event.RequestID,
						"grand_total", event.Result.GrandTotal,
					)
					msg.Ack()
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			log.Info("stopping tax notification tail")
			cancel()
			return nil
		},
	})
}
