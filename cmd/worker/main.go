package main

import (
	"context"
	"log/slog"
	"os"

	"agora/config"
	"agora/internal/delivery"
	"agora/internal/delivery/worker"
	"agora/internal/delivery/worker/handler"
	logs "agora/internal/infra/log"
	"agora/internal/infra/notification"
	"agora/internal/infra/persistence/postgres"
	"agora/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The worker receives Pub/Sub push deliveries of post-created events and
// fans them out to subscriber devices.
func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
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
		postgres.New,
		postgres.NewDeviceRepository,
		notification.NewNotificationService,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
