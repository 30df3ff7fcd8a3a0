package dataset

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/go-sod/clsdemo/internal/logging"
)

type Config struct {
	File string `envconfig:"CLSDEMO_DATASET_FILE"`
}

// Repository owns the current dataset. Readers get copies, so a
// classification in flight never observes a concurrent Replace.
type Repository struct {
	mtx sync.RWMutex
	set TrainingSet
}

func NewRepository(set TrainingSet) *Repository {
	return &Repository{set: set.Copy()}
}

// NewRepositoryFromConfig loads cfg.File when set, the built-in dataset
// otherwise.
func NewRepositoryFromConfig(ctx context.Context, cfg *Config) (*Repository, error) {
	logger := logging.FromContext(ctx)
	if cfg.File == "" {
		logger.Infof("using built-in dataset")
		return NewRepository(Default()), nil
	}

	f, err := os.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	set, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset file %s: %w", cfg.File, err)
	}
	logger.Infof("loaded %d samples from %s", len(set), cfg.File)
	return NewRepository(set), nil
}

func (r *Repository) Snapshot() TrainingSet {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.set.Copy()
}

func (r *Repository) Replace(set TrainingSet) {
	r.mtx.Lock()
	r.set = set.Copy()
	r.mtx.Unlock()
}

func (r *Repository) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.set)
}
