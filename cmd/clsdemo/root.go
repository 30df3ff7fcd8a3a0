package main

import (
	"context"
	"fmt"
	"io"

	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/explain"
	"github.com/go-sod/clsdemo/internal/geom"
	"github.com/go-sod/clsdemo/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	file     string
	colored  bool
	policy   string
	distance string
	verbose  bool
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "clsdemo",
		Short:        "Classify diabetes samples with Naive Bayes or KNN",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "CSV dataset (built-in dataset when empty)")
	cmd.PersistentFlags().BoolVar(&opts.colored, "color", false, "Colorize the explanation")
	cmd.PersistentFlags().StringVar(&opts.policy, "policy", string(classifier.PolicyPropagate), "Degenerate statistics policy (PROPAGATE|STRICT)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")
	cmd.PersistentFlags().StringVar(&opts.distance, "metric", string(geom.DistanceFuncTypeEuclidean), "KNN distance (EUCLIDEAN|MANHATTAN|CHEBYSHEV)")

	cmd.AddCommand(
		newNaiveBayesCmd(opts),
		newKNNCmd(opts),
		newExplainCmd(opts),
		newDatasetCmd(opts),
	)
	return cmd
}

func (o *rootOptions) trainingSet(ctx context.Context) (dataset.TrainingSet, error) {
	repo, err := dataset.NewRepositoryFromConfig(ctx, &dataset.Config{File: o.file})
	if err != nil {
		return nil, err
	}
	return repo.Snapshot(), nil
}

func (o *rootOptions) engine() (*classifier.Engine, error) {
	return classifier.NewEngine(&classifier.Config{
		Policy:   classifier.DegeneratePolicy(o.policy),
		Distance: geom.DistanceFuncType(o.distance),
		DefaultK: 3,
	})
}

func (o *rootOptions) write(w io.Writer, e *explain.Explanation) error {
	if o.colored {
		return e.WriteColor(w)
	}
	return e.WriteText(w)
}

func (o *rootOptions) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.verbose {
		return logging.WithLogger(ctx, logging.NewLogger(true))
	}
	return logging.WithLogger(ctx, zap.NewNop().Sugar())
}

func queryFlags(cmd *cobra.Command, q *dataset.Query) {
	cmd.Flags().Float64VarP(&q.Glucose, "glucose", "g", 0, "Glucose level (mg/dL)")
	cmd.Flags().Float64VarP(&q.BloodPressure, "bp", "b", 0, "Blood pressure (mmHg)")
	cmd.Flags().Float64VarP(&q.Age, "age", "a", 0, "Age (years)")
	_ = cmd.MarkFlagRequired("glucose")
	_ = cmd.MarkFlagRequired("bp")
	_ = cmd.MarkFlagRequired("age")
}

func classifyAndWrite(cmd *cobra.Command, opts *rootOptions, alg classifier.Algorithm, q dataset.Query, k int) error {
	ctx := opts.context(cmd)
	set, err := opts.trainingSet(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	engine, err := opts.engine()
	if err != nil {
		return err
	}
	res, err := engine.Classify(alg, set, q, k)
	if err != nil {
		return err
	}
	e, err := explain.Explain(res)
	if err != nil {
		return err
	}
	return opts.write(cmd.OutOrStdout(), e)
}
