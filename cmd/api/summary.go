package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"launchdash/internal/launches"
)

func newSummaryCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print launch statistics per site and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			manager, err := launches.InitManager(launches.Config{DataPath: cfg.DataPath, Verbose: cfg.Verbose})
			if err != nil {
				return err
			}

			return writeSummary(cmd.OutOrStdout(), manager)
		},
	}
}

func writeSummary(w io.Writer, manager *launches.Manager) error {
	statistics, err := manager.Dataset().Statistics()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Source: %s (loaded %s)\n\n", manager.Source(), manager.LoadedAt().Format(time.RFC3339))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SITE\tLAUNCHES\tSUCCESSES\tRATE\tMEAN KG\tMEDIAN KG\tMIN KG\tMAX KG")
	for _, s := range append(statistics.Sites, statistics.Overall) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f%%\t%.1f\t%.1f\t%.0f\t%.0f\n",
			s.Site, s.Launches, s.Successes, 100*s.SuccessRate,
			s.MeanPayload, s.MedianPayload, s.MinPayload, s.MaxPayload)
	}
	return tw.Flush()
}
