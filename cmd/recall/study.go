package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/recall/internal/cli"
	"github.com/at-ishikawa/recall/internal/study"
)

func deckArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func newQueueCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "queue [deck]",
		Short: "List the cards due now, in study order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			queue, err := a.service.Queue(cmd.Context(), deckArg(args))
			if err != nil {
				return err
			}
			if limit > 0 && len(queue) > limit {
				queue = queue[:limit]
			}

			now := a.service.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tDECK\tQUEUE\tDUE\tQUESTION")
			for _, rec := range queue {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					rec.ID, rec.DeckID, rec.Queue, study.DueLabel(rec.State(), now), rec.Question)
			}
			return w.Flush()
		},
	}
	command.Flags().IntVar(&limit, "limit", 0, "Show at most this many cards")
	return command
}

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [deck]",
		Short: "Count the new, learning and review cards waiting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			sum, err := a.service.Summary(cmd.Context(), deckArg(args))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "new: %d\nlearning: %d\nreview: %d\ndue now: %d\nnext day: %s\n",
				sum.New, sum.Learning, sum.Review, sum.Due(), a.service.NextDay().In(a.loc).Format("2006-01-02 15:04 MST"))
			return nil
		},
	}
}

func newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study [deck]",
		Short: "Study the due cards interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			interactiveCLI := cli.NewInteractiveCLI(os.Stdin, cmd.OutOrStdout())
			session := cli.NewStudySession(interactiveCLI, a.service, deckArg(args))
			fmt.Println("Study session started! Type q to quit.")
			fmt.Println()
			if err := interactiveCLI.Run(cmd.Context(), session); err != nil {
				return err
			}
			fmt.Printf("Reviewed %d cards.\n", session.Reviewed())
			return nil
		},
	}
}
