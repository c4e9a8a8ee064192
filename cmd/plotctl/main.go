package main

import (
	"encoding/json"
	"fmt"
	"os"

	"goplots/domain/series"
	"goplots/domain/stats"
	"goplots/models"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plotctl",
		Short: "Render goplots charts offline, without the HTTP server",
	}

	rootCmd.AddCommand(
		newRenderCmd(),
		newDescribeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRenderCmd() *cobra.Command {
	var kind, in, out, title string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a payload file to a PNG file",
		Long: `Render a payload file through the same validate, render and encode path as the API.

Kinds: line (JSON array), csv, xlsx, summary, distribution, ecdf, qq, corr-heatmap, series.

Example: plotctl render --kind qq --in qq.json --out qq.png --title "Residuals"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", in, err)
			}
			png, err := renderPayload(kind, body, title)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(png))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "line", "Payload kind")
	cmd.Flags().StringVar(&in, "in", "", "Input payload file")
	cmd.Flags().StringVar(&out, "out", "chart.png", "Output PNG file")
	cmd.Flags().StringVar(&title, "title", "", "Optional chart title")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func newDescribeCmd() *cobra.Command {
	var csvInput bool

	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Print count, mean, median and sample sd of a numeric file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var values []float64
			if csvInput {
				values, err = series.ExtractCSV(string(body))
			} else {
				values, err = models.DecodeValues(body)
			}
			if err != nil {
				return err
			}

			desc, err := stats.Describe(values)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(desc)
		},
	}

	cmd.Flags().BoolVar(&csvInput, "csv", false, "Treat the file as CSV text instead of a JSON array")

	return cmd
}
