package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"poketrainers/internal/advisor"
	"poketrainers/internal/evolution"
	"poketrainers/internal/format"
	"poketrainers/internal/logging"
)

var lineFlags struct {
	markdown bool
}

var lineCmd = &cobra.Command{
	Use:   "line <name>",
	Short: "Show the evolution line of a pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runLine,
}

var dedupFlags struct {
	markdown bool
}

var dedupCmd = &cobra.Command{
	Use:   "dedup <name>...",
	Short: "Keep one pokemon per evolution line, preferring the most evolved",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDedup,
}

var suggestFlags struct {
	theme    string
	markdown bool
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [owned...]",
	Short: "Suggest a team of six around the pokemon you own",
	RunE:  runSuggest,
}

func init() {
	lineCmd.Flags().BoolVar(&lineFlags.markdown, "markdown", false, "Render a Markdown table")
	dedupCmd.Flags().BoolVar(&dedupFlags.markdown, "markdown", false, "Render a Markdown table")

	f := suggestCmd.Flags()
	f.StringVar(&suggestFlags.theme, "theme", "", "Team goal, e.g. rain or hyper offense")
	f.BoolVar(&suggestFlags.markdown, "markdown", false, "Render a Markdown table")
}

func runLine(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	line := newResolver(api).Resolve(cmd.Context(), args[0])
	fmt.Fprint(cmd.OutOrStdout(), format.LineTable(args[0], line, tableMode(lineFlags.markdown)))
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func runDedup(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	r := newResolver(api)
	r.Prefetch(cmd.Context(), args, cfg.PrefetchWorkers)

	res := evolution.NewDeduplicator(r).Report(cmd.Context(), args)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, format.DedupTable(res, tableMode(dedupFlags.markdown)))
	fmt.Fprintf(out, "Team: %v\n", res.Team)
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	r := newResolver(api)
	r.Prefetch(cmd.Context(), args, cfg.PrefetchWorkers)

	adv := advisor.New(r, advisor.WithLogger(logging.New("advisor")))
	s := adv.SuggestTeam(cmd.Context(), suggestFlags.theme, args)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, format.SuggestionTable(s, args, tableMode(suggestFlags.markdown)))
	fmt.Fprintln(out, s.Reason)
	return nil
}
