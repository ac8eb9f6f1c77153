package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/drakos74/ransac/internal/storage"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ransac",
		Short:        "robust cubic regression over noisy point sets",
		SilenceUsage: true,
	}
	root.AddCommand(newFitCmd())
	return root
}

func newFitCmd() *cobra.Command {
	opts := options{}
	var debug bool

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "fit a cubic to the points of a json file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			opts.trialsSet = cmd.Flags().Changed("trials")
			opts.thresholdSet = cmd.Flags().Changed("threshold")
			result, err := run(opts)
			if err != nil {
				return err
			}
			m := result.Model
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "num of inliers: %d\n", len(result.Inliers))
			fmt.Fprintf(out, "a: %v\nb: %v\nc: %v\nd: %v\n", m.A, m.B, m.C, m.D)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "json file with the points as [{\"x\":..,\"y\":..}]")
	flags.StringVarP(&opts.config, "config", "c", "", "yaml config file")
	flags.StringVarP(&opts.out, "out", "o", storage.DefaultDir, "directory to store the result in")
	flags.Int64Var(&opts.seed, "seed", 0, "seed of the random source, time based if 0")
	flags.IntVar(&opts.trials, "trials", 0, "number of minimal samples, overrides the config")
	flags.Float64Var(&opts.threshold, "threshold", 0, "inlier residual threshold, overrides the config")
	flags.BoolVar(&opts.refine, "refine", false, "re-estimate the model over the inliers")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "do not store the result")
	flags.StringVar(&opts.pushGateway, "push-gateway", "", "pushgateway url to send the fit metrics to")
	flags.BoolVar(&debug, "debug", false, "debug logging")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
