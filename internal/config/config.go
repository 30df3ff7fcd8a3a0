// Package clsdemo holds the aggregated service configuration.
package clsdemo

import (
	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/classify"
	"github.com/go-sod/clsdemo/internal/database"
	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/explore"
	"github.com/go-sod/clsdemo/internal/metric"
	"github.com/go-sod/clsdemo/internal/server"
	"github.com/go-sod/clsdemo/internal/setup"
	"github.com/go-sod/clsdemo/internal/tasks"
)

var (
	_ setup.ClassifierConfigProvider = (*Config)(nil)
	_ setup.DatabaseConfigProvider   = (*Config)(nil)
	_ setup.DatasetConfigProvider    = (*Config)(nil)
	_ setup.TasksConfigProvider      = (*Config)(nil)
	_ setup.MetricConfigProvider     = (*Config)(nil)
)

type Config struct {
	LogDebug   bool `envconfig:"CLSDEMO_LOG_DEBUG" default:"false"`
	Server     server.Config
	Classifier classifier.Config
	Classify   classify.Config
	Dataset    dataset.Config
	Explore    explore.Config
	Database   database.Config
	Tasks      tasks.Config
	Metric     metric.Config
}

func (c *Config) ClassifierConfig() *classifier.Config {
	return &c.Classifier
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c *Config) DatasetConfig() *dataset.Config {
	return &c.Dataset
}

func (c *Config) TasksConfig() *tasks.Config {
	return &c.Tasks
}

func (c *Config) MetricConfig() *metric.Config {
	return &c.Metric
}
