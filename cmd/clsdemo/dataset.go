package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/explain"
	"github.com/spf13/cobra"
)

func newDatasetCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect the training dataset",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "summary",
			Short: "Print class counts and feature averages",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				set, err := opts.trainingSet(opts.context(cmd))
				if err != nil {
					return err
				}
				return writeSummary(cmd.OutOrStdout(), set)
			},
		},
		&cobra.Command{
			Use:   "export",
			Short: "Write the dataset as CSV to stdout",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				set, err := opts.trainingSet(opts.context(cmd))
				if err != nil {
					return err
				}
				return dataset.WriteCSV(cmd.OutOrStdout(), set)
			},
		},
	)
	return cmd
}

func writeSummary(w io.Writer, set dataset.TrainingSet) error {
	s := dataset.Summarize(set)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "total\t%d\n", s.Total)
	fmt.Fprintf(tw, "diabetic\t%d\t%s\n", s.DiabeticCount, ratio(s.DiabeticPercentage))
	fmt.Fprintf(tw, "non-diabetic\t%d\t%s\n", s.NonDiabeticCount, ratio(s.NonDiabeticPercentage))
	for _, f := range dataset.Features {
		avg := "-"
		if v := s.Averages[f]; v != nil {
			avg = explain.Fixed(*v, 1)
		}
		fmt.Fprintf(tw, "avg %s\t%s\n", f, avg)
	}
	return tw.Flush()
}

func ratio(p *float64) string {
	if p == nil {
		return "-"
	}
	return explain.Fixed(*p, 1) + "%"
}
