package tasks

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/go-sod/clsdemo/internal/database"
	"github.com/go-sod/clsdemo/internal/logging"
	taskdb "github.com/go-sod/clsdemo/internal/tasks/database"
)

// NewStore selects the configured backend. The returned close function
// releases backend resources owned by the store; the bbolt handle stays
// with its caller.
func NewStore(ctx context.Context, cfg *Config, db *database.DB) (Store, func() error, error) {
	logger := logging.FromContext(ctx)
	switch cfg.Backend {
	case BackendBolt, "":
		if db == nil {
			return nil, nil, fmt.Errorf("bolt task store requires a database")
		}
		logger.Infof("using bolt task store")
		return taskdb.New(db), func() error { return nil }, nil
	case BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("unable to connect to redis %s: %w", cfg.RedisAddr, err)
		}
		logger.Infof("using redis task store at %s", cfg.RedisAddr)
		return taskdb.NewRedis(client), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown tasks backend: %s", cfg.Backend)
	}
}
