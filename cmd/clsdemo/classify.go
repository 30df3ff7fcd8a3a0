package main

import (
	"fmt"

	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/explain"
	"github.com/spf13/cobra"
)

func newNaiveBayesCmd(opts *rootOptions) *cobra.Command {
	var q dataset.Query
	cmd := &cobra.Command{
		Use:     "nb",
		Aliases: []string{"naive-bayes"},
		Short:   "Classify a point with Gaussian Naive Bayes",
		Example: `  clsdemo nb --glucose 160 --bp 88 --age 42`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return classifyAndWrite(cmd, opts, classifier.AlgorithmNaiveBayes, q, 0)
		},
	}
	queryFlags(cmd, &q)
	return cmd
}

func newKNNCmd(opts *rootOptions) *cobra.Command {
	var (
		q dataset.Query
		k int
	)
	cmd := &cobra.Command{
		Use:     "knn",
		Short:   "Classify a point with K-nearest neighbors",
		Example: `  clsdemo knn --glucose 160 --bp 88 --age 42 -k 5 --metric MANHATTAN`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return classifyAndWrite(cmd, opts, classifier.AlgorithmKNN, q, k)
		},
	}
	queryFlags(cmd, &q)
	cmd.Flags().IntVarP(&k, "k", "k", 3, "Number of neighbors")
	return cmd
}

func newExplainCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "explain <naive-bayes|knn>",
		Short:     "Describe how an algorithm works",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(classifier.AlgorithmNaiveBayes), string(classifier.AlgorithmKNN), "nb"},
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := classifier.Algorithm(args[0])
			if args[0] == "nb" {
				alg = classifier.AlgorithmNaiveBayes
			}
			text, err := explain.Algorithm(alg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}
