package classify

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"CLSDEMO_CLASSIFY_REQUEST_TIMEOUT" default:"30s"`
	MaxBatch       int           `envconfig:"CLSDEMO_CLASSIFY_MAX_BATCH" default:"100"`
	MaxDatasetRows int           `envconfig:"CLSDEMO_CLASSIFY_MAX_DATASET_ROWS" default:"10000"`
}
