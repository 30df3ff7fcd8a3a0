package tasks

const (
	BackendBolt  = "BOLT"
	BackendRedis = "REDIS"
)

type Config struct {
	Backend   string `envconfig:"CLSDEMO_TASKS_BACKEND" default:"BOLT"`
	RedisAddr string `envconfig:"CLSDEMO_REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"CLSDEMO_REDIS_DB" default:"0"`
	Seed      bool   `envconfig:"CLSDEMO_TASKS_SEED" default:"true"`
}
