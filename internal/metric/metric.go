// Package metric defines the opencensus measures recorded by the service and
// exposes them in the prometheus text format.
package metric

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"contrib.go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

type Config struct {
	Namespace string `envconfig:"CLSDEMO_METRICS_NAMESPACE" default:"clsdemo"`
}

var (
	KeyAlgorithm  = tag.MustNewKey("algorithm")
	KeyPrediction = tag.MustNewKey("prediction")
	KeyRoute      = tag.MustNewKey("route")
)

var (
	Classifications       = stats.Int64("classifications", "Number of finished classifications", stats.UnitDimensionless)
	ClassificationErrors  = stats.Int64("classification_errors", "Number of failed classifications", stats.UnitDimensionless)
	ClassificationLatency = stats.Float64("classification_latency", "Classification latency", stats.UnitMilliseconds)
	Requests              = stats.Int64("requests", "Number of served http requests", stats.UnitDimensionless)
)

var Views = []*view.View{
	{
		Name:        "classifications_total",
		Measure:     Classifications,
		Description: "Finished classifications by algorithm and predicted class",
		TagKeys:     []tag.Key{KeyAlgorithm, KeyPrediction},
		Aggregation: view.Count(),
	},
	{
		Name:        "classification_errors_total",
		Measure:     ClassificationErrors,
		Description: "Failed classifications by algorithm",
		TagKeys:     []tag.Key{KeyAlgorithm},
		Aggregation: view.Count(),
	},
	{
		Name:        "classification_latency_ms",
		Measure:     ClassificationLatency,
		Description: "Classification latency distribution",
		TagKeys:     []tag.Key{KeyAlgorithm},
		Aggregation: view.Distribution(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100),
	},
	{
		Name:        "http_requests_total",
		Measure:     Requests,
		Description: "Served http requests by route",
		TagKeys:     []tag.Key{KeyRoute},
		Aggregation: view.Count(),
	},
}

// NewExporter registers the views and returns the /metrics handler.
func NewExporter(cfg *Config) (*prometheus.Exporter, error) {
	if err := view.Register(Views...); err != nil {
		return nil, fmt.Errorf("unable register views: %w", err)
	}
	pe, err := prometheus.NewExporter(prometheus.Options{Namespace: cfg.Namespace})
	if err != nil {
		return nil, fmt.Errorf("unable create prometheus exporter: %w", err)
	}
	view.RegisterExporter(pe)
	return pe, nil
}

func RecordClassification(ctx context.Context, algorithm string, predicted int, elapsed time.Duration) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyAlgorithm, algorithm), tag.Upsert(KeyPrediction, strconv.Itoa(predicted))},
		Classifications.M(1),
		ClassificationLatency.M(float64(elapsed)/float64(time.Millisecond)),
	)
}

func RecordClassificationError(ctx context.Context, algorithm string) {
	_ = stats.RecordWithTags(ctx, []tag.Mutator{tag.Upsert(KeyAlgorithm, algorithm)}, ClassificationErrors.M(1))
}

func RecordRequest(ctx context.Context, route string) {
	_ = stats.RecordWithTags(ctx, []tag.Mutator{tag.Upsert(KeyRoute, route)}, Requests.M(1))
}
