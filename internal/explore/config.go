package explore

type Config struct {
	PageSize      int   `envconfig:"CLSDEMO_DATASET_PAGE_SIZE" default:"25"`
	MaxUploadSize int64 `envconfig:"CLSDEMO_DATASET_MAX_UPLOAD" default:"1048576"`
}
