package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"todo-ai-chatbot/internal/intent"
	intentUC "todo-ai-chatbot/internal/intent/usecase"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/log"
)

type rootOptions struct {
	threshold float64
	userID    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "intentctl",
		Short:         "Inspect the chat assistant's intent classifier",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Float64Var(&opts.threshold, "threshold", intent.DefaultThreshold, "minimum score for a non-unknown intent")
	root.PersistentFlags().StringVar(&opts.userID, "user", "cli", "user id passed to the router")

	root.AddCommand(
		newClassifyCmd(opts),
		newRouteCmd(opts),
		newPatternsCmd(),
	)
	return root
}

func (o *rootOptions) useCase() (intentUC.UseCase, error) {
	c, err := intent.New(intent.Config{Threshold: &o.threshold})
	if err != nil {
		return nil, err
	}
	return intentUC.New(log.NewNop(), c), nil
}

func (o *rootOptions) analyze(args []string) (intentUC.Analysis, error) {
	uc, err := o.useCase()
	if err != nil {
		return intentUC.Analysis{}, err
	}
	return uc.Analyze(context.Background(), model.Scope{UserID: o.userID}, strings.Join(args, " "))
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var withScores bool

	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify an utterance and print the refined intent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.analyze(args)
			if err != nil {
				return err
			}

			out := map[string]any{
				"classified": a.Classified,
				"refined":    a.Refined,
			}
			if withScores {
				out["scores"] = a.Scores
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&withScores, "scores", false, "include the raw score of every intent")
	return cmd
}

func newRouteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "route <text>",
		Short: "Classify an utterance and print the tool it routes to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.analyze(args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.Routing)
		},
	}
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Print the intent and entity pattern tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePatterns(cmd.OutOrStdout())
		},
	}
}

func writePatterns(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INTENT\tWEIGHT\tPATTERN")
	for _, p := range intent.DefaultIntentPatterns() {
		weight := p.Weight
		if weight == 0 {
			weight = intent.DefaultMatchWeight
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%s\n", p.Intent, weight, p.Source)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SLOT\t\tPATTERN")
	for _, p := range intent.DefaultEntityPatterns() {
		fmt.Fprintf(tw, "%s\t\t%s\n", p.Slot, p.Source)
	}
	fmt.Fprintf(tw, "%s\t\t%s\n", "title (fallback)", intent.FallbackTitlePattern)
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
