package main

import (
	"context"
	"log/slog"
	"os"

	"tripbook/config"
	"tripbook/internal/delivery"
	"tripbook/internal/delivery/api"
	"tripbook/internal/delivery/api/middleware"
	"tripbook/internal/delivery/api/router/handler"
	"tripbook/internal/delivery/relay"
	"tripbook/internal/infra/cache"
	"tripbook/internal/infra/firebase"
	"tripbook/internal/infra/identity"
	logs "tripbook/internal/infra/log"
	"tripbook/internal/infra/payment"
	"tripbook/internal/infra/persistence/firestoredb"
	"tripbook/internal/infra/pubsub"
	"tripbook/internal/infra/qrcode"
	"tripbook/internal/infra/storage"
	"tripbook/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return firestoredb.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewFirebaseIdentity,
			payment.NewGateway,
			storage.NewBlobStorage,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewAgencyService,
			impl.NewPackageService,
			impl.NewBookingService,
			impl.NewAdminService,
			impl.NewProfileService,
			impl.NewPaymentService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAgencyHandler,
			handler.NewPackageHandler,
			handler.NewBookingHandler,
			handler.NewAdminHandler,
			handler.NewProfileHandler,
			handler.NewPaymentHandler,
			handler.NewMediaHandler,
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
			fx.Annotate(
				relay.NewOutboxRelay,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
