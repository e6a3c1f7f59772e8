package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/scheduling"
	"github.com/at-ishikawa/recall/internal/study"
)

func newCardCommand() *cobra.Command {
	cardCommand := &cobra.Command{
		Use:   "card",
		Short: "Commands for a single card",
	}

	cardCommand.AddCommand(
		newCardSuspensionCommand("suspend", "Take a card out of every queue", (*study.Service).Suspend),
		newCardSuspensionCommand("unsuspend", "Put a suspended card back where it was", (*study.Service).Unsuspend),
		newCardGradeCommand(),
		newCardHistoryCommand(),
	)
	return cardCommand
}

type cardChange func(s *study.Service, ctx context.Context, cardID string) (card.Record, error)

func newCardSuspensionCommand(use, short string, change cardChange) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <card id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := change(a.service, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rec.ID, rec.Queue)
			return nil
		},
	}
}

func newCardGradeCommand() *cobra.Command {
	var rating RatingFlag
	command := &cobra.Command{
		Use:   "grade <card id>",
		Short: "Record a rating without the interactive session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.service.Grade(cmd.Context(), args[0], scheduling.Rating(rating))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, next review %s\n",
				result.Card.ID, result.Card.Queue, study.DueLabel(result.Card.State(), a.service.Now()))
			return nil
		},
	}
	command.Flags().Var(&rating, "rating", "Rating: "+ratingNames()+" or 1-4")
	_ = command.MarkFlagRequired("rating")
	return command
}

func newCardHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <card id>",
		Short: "Print the review log of a card as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			logs, err := a.service.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(logs); err != nil {
				return fmt.Errorf("yaml.Encode() > %w", err)
			}
			return encoder.Close()
		},
	}
}
