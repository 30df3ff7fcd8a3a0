package setup

import (
	"context"
	"fmt"

	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/database"
	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/logging"
	"github.com/go-sod/clsdemo/internal/metric"
	"github.com/go-sod/clsdemo/internal/srvenv"
	"github.com/go-sod/clsdemo/internal/tasks"
	"github.com/kelseyhightower/envconfig"
)

type ClassifierConfigProvider interface {
	ClassifierConfig() *classifier.Config
}

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

type DatasetConfigProvider interface {
	DatasetConfig() *dataset.Config
}

type TasksConfigProvider interface {
	TasksConfig() *tasks.Config
}

type MetricConfigProvider interface {
	MetricConfig() *metric.Config
}

// Setup reads the environment into config and builds every component whose
// provider interface config implements. On error, resources opened so far
// are released.
func Setup(ctx context.Context, config interface{}) (env *srvenv.SrvEnv, err error) {
	logger := logging.FromContext(ctx)
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	var (
		db       *database.DB
		closeFns []func() error
		tasksCfg *tasks.Config
	)
	defer func() {
		if err != nil {
			for _, fn := range closeFns {
				_ = fn()
			}
			if db != nil {
				_ = db.Close(ctx)
			}
		}
	}()

	if tasksConfigProvider, ok := config.(TasksConfigProvider); ok {
		tasksCfg = tasksConfigProvider.TasksConfig()
	}

	// Only the bolt task store needs the database file.
	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok && tasksCfg != nil && tasksCfg.Backend != tasks.BackendRedis {
		logger.Info("Configuring db")
		dbFromEnv, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		db = dbFromEnv
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(db))
	}

	if classifierConfigProvider, ok := config.(ClassifierConfigProvider); ok {
		logger.Info("Configuring classifier")
		provideFn, err := ProvideClassifierFor(classifierConfigProvider)
		if err != nil {
			return nil, fmt.Errorf("unable create classifier provide function: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithClassifier(provideFn))
	}

	if datasetConfigProvider, ok := config.(DatasetConfigProvider); ok {
		logger.Info("Configuring dataset")
		repo, err := dataset.NewRepositoryFromConfig(ctx, datasetConfigProvider.DatasetConfig())
		if err != nil {
			return nil, fmt.Errorf("unable load dataset: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithRepository(repo))
	}

	if tasksCfg != nil {
		logger.Info("Configuring tasks")
		board, closeFn, err := ProvideBoardFor(ctx, tasksCfg, db)
		if err != nil {
			return nil, fmt.Errorf("unable create task board: %w", err)
		}
		closeFns = append(closeFns, closeFn)
		serverEnvOpts = append(serverEnvOpts, srvenv.WithBoard(board, closeFn))
	}

	if metricConfigProvider, ok := config.(MetricConfigProvider); ok {
		logger.Info("Configuring metrics")
		exporter, err := metric.NewExporter(metricConfigProvider.MetricConfig())
		if err != nil {
			return nil, fmt.Errorf("unable create metrics exporter: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithExporter(exporter))
	}

	return srvenv.New(serverEnvOpts...), nil
}

func ProvideClassifierFor(provider ClassifierConfigProvider) (classifier.ProvideFn, error) {
	cfg := provider.ClassifierConfig()
	// A bad policy or metric fails here, before anything is served.
	if _, err := classifier.NewEngine(cfg); err != nil {
		return nil, fmt.Errorf("invalid classifier config: %w", err)
	}
	return func() (*classifier.Engine, error) {
		return classifier.NewEngine(cfg)
	}, nil
}

// ProvideBoardFor opens the configured task store and seeds it when asked.
func ProvideBoardFor(ctx context.Context, cfg *tasks.Config, db *database.DB) (*tasks.Board, func() error, error) {
	store, closeFn, err := tasks.NewStore(ctx, cfg, db)
	if err != nil {
		return nil, nil, err
	}
	board := tasks.New(store)
	if cfg.Seed {
		n, err := board.Seed(ctx)
		if err != nil {
			_ = closeFn()
			return nil, nil, fmt.Errorf("unable seed tasks: %w", err)
		}
		if n > 0 {
			logging.FromContext(ctx).Infof("seeded %d tasks", n)
		}
	}
	return board, closeFn, nil
}
