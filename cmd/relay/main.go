package main

import (
	"context"
	"log/slog"
	"os"

	"relay/config"
	"relay/internal/delivery"
	"relay/internal/delivery/api"
	"relay/internal/delivery/api/router/handler"
	"relay/internal/domain/constants"
	"relay/internal/domain/service"
	"relay/internal/infra/expo"
	logs "relay/internal/infra/log"
	"relay/internal/infra/metrics"
	"relay/internal/infra/notification"
	"relay/internal/infra/pubsub"
	"relay/internal/infra/registry"
	"relay/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			registry.NewMemoryTokenRegistry,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushProvider,
			pubsub.NewEventPublisher,
		),
	)
}

// newPushProvider selects the upstream push provider from provider.kind
func newPushProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushProvider, error) {
	switch cfg.Provider.Kind {
	case constants.PushProviderExpo:
		return expo.NewClient(cfg.Expo, logger), nil
	case constants.PushProviderFCM:
		if cfg.Firebase == nil {
			return nil, errors.New("firebase configuration is required for the fcm provider")
		}

		provider, err := notification.NewFirebaseProvider(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath, logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firebase provider")
		}

		return provider, nil
	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider.Kind)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeliveryDispatcher,
			impl.NewRelayService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRelayHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
