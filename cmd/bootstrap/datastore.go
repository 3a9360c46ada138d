package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"decor-rental/internal/domain/site"
	"decor-rental/internal/infra/datastore"
	"decor-rental/internal/infra/db"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/config"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var DatastoreModule = fx.Module("datastore",
	fx.Provide(
		NewBackend,
		fx.Annotate(
			datastore.NewStore,
			fx.As(fx.Self()),
			fx.As(new(shared.DatasetStore)),
			fx.As(new(shared.DatasetReader)),
		),
	),
	fx.Invoke(SeedStore),
)

// NewBackend opens the backend selected by DATASTORE_DRIVER and closes it on stop.
func NewBackend(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (datastore.Backend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var (
		backend datastore.Backend
		cleanup func()
		err     error
	)
	switch cfg.Datastore.Driver {
	case config.DriverFile:
		backend, err = datastore.NewFileBackend(cfg.Datastore.FilePath)
	case config.DriverPostgres:
		pool, closePool, connErr := db.Connect(ctx, cfg.DB)
		if connErr != nil {
			return nil, connErr
		}
		cleanup = closePool
		backend, err = datastore.NewPostgresBackend(ctx, pool)
	case config.DriverRedis:
		client, closeClient, connErr := db.ConnectRedis(ctx, cfg.Redis)
		if connErr != nil {
			return nil, connErr
		}
		cleanup = closeClient
		backend = datastore.NewRedisBackend(client, cfg.Redis.Key)
	default:
		err = errs.Newf("unsupported datastore driver %q", cfg.Datastore.Driver)
	}
	if err != nil {
		if cleanup != nil {
			cleanup()
		}
		return nil, err
	}
	logger.Info("Datastore backend ready", slog.String("driver", cfg.Datastore.Driver))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			err := backend.Close()
			if cleanup != nil {
				cleanup()
			}
			return err
		},
	})
	return backend, nil
}

// SeedStore writes the initial dataset into an empty backend before the server starts.
func SeedStore(lc fx.Lifecycle, store *datastore.Store, cfg config.Config, clk clock.Clock) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := store.Seed(ctx, func() (*site.Dataset, error) {
				return datastore.InitialDataset(cfg.Site.Name, cfg.Admin, clk)
			})
			return err
		},
	})
}
