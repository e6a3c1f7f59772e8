package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/recall/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var year, month int
	command := &cobra.Command{
		Use:   "stats [deck]",
		Short: "Show monthly review statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year")
			}
			a, err := newApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			logs, err := a.logs.FindByDeck(cmd.Context(), deckArg(args))
			if err != nil {
				return err
			}
			result := statistics.CalculateStatistics(logs, a.loc, year, month)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "PERIOD\tNEW\tREVIEWS\tLAPSES\tRETENTION\tRATINGS\tCARDS")
			for _, p := range result.Periods {
				_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%d\t%d\n",
					p.Period, p.NewCards, p.Reviews, p.Lapses, formatRetention(p.Reviews, p.Retention()), p.Ratings, p.UniqueCards)
			}
			agg := result.Aggregate
			_, _ = fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%s\t%d\t%d\n",
				agg.NewCards, agg.Reviews, agg.Lapses, formatRetention(agg.Reviews, agg.Retention()), agg.Ratings, agg.UniqueCards)
			return w.Flush()
		},
	}
	command.Flags().IntVar(&year, "year", 0, "Only count this year")
	command.Flags().IntVar(&month, "month", 0, "Only count this month of --year (1-12)")
	return command
}

func formatRetention(reviews int, retention float64) string {
	if reviews == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", retention*100)
}
