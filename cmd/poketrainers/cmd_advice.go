package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"poketrainers/internal/advisor"
	"poketrainers/internal/format"
)

var guideFlags struct {
	topic string
	level string
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print a Markdown strategy guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), advisor.StrategyGuide(guideFlags.topic, guideFlags.level))
		return nil
	},
}

var synergyCmd = &cobra.Command{
	Use:   "synergy <name>...",
	Short: "Analyse known combos within a team",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), advisor.Synergy(args))
		return nil
	},
}

var buildFlags struct {
	markdown bool
}

var buildCmd = &cobra.Command{
	Use:   "build <name>",
	Short: "Show a competitive build template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), format.BuildTable(advisor.Build(args[0]), tableMode(buildFlags.markdown)))
		return nil
	},
}

func init() {
	f := guideCmd.Flags()
	f.StringVar(&guideFlags.topic, "topic", "", "Guide topic (e.g. \"Tier List\", \"Breeding\")")
	f.StringVar(&guideFlags.level, "level", advisor.LevelBeginner, "beginner or advanced")
	_ = guideCmd.MarkFlagRequired("topic")

	buildCmd.Flags().BoolVar(&buildFlags.markdown, "markdown", false, "Render a Markdown table")
}
