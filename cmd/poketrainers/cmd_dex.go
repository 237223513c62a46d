package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"poketrainers/internal/dex"
	"poketrainers/internal/display"
	"poketrainers/internal/format"
)

var weaknessFlags struct {
	markdown bool
}

var weaknessCmd = &cobra.Command{
	Use:   "weakness <name>",
	Short: "Show a pokemon's types, abilities and weaknesses",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeakness,
}

var catchFlags struct {
	maxHP    int
	hp       int
	ball     string
	status   string
	markdown bool
}

var catchCmd = &cobra.Command{
	Use:   "catch <name>",
	Short: "Estimate the chance of catching a pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatch,
}

var lookupFlags struct {
	markdown bool
}

var lookupCmd = &cobra.Command{
	Use:   "lookup move|item|ability <name>",
	Short: "Look up a move, item or ability",
	Args:  cobra.ExactArgs(2),
	RunE:  runLookup,
}

func init() {
	weaknessCmd.Flags().BoolVar(&weaknessFlags.markdown, "markdown", false, "Render a Markdown table")

	f := catchCmd.Flags()
	f.IntVar(&catchFlags.maxHP, "max-hp", 0, "Target's maximum HP (required)")
	f.IntVar(&catchFlags.hp, "hp", 0, "Target's current HP (required)")
	f.StringVar(&catchFlags.ball, "ball", "poke", "Ball: "+strings.Join(dex.BallCodes(), ", "))
	f.StringVar(&catchFlags.status, "status", "none", "Status: "+strings.Join(dex.StatusCodes(), ", "))
	f.BoolVar(&catchFlags.markdown, "markdown", false, "Render a Markdown table")
	_ = catchCmd.MarkFlagRequired("max-hp")
	_ = catchCmd.MarkFlagRequired("hp")

	lookupCmd.Flags().BoolVar(&lookupFlags.markdown, "markdown", false, "Render a Markdown table")
}

func runWeakness(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	sum, err := newDex(api).Summary(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#%d %s\n", sum.ID, sum.DisplayName)
	fmt.Fprintf(out, "Types:     %s\n", strings.Join(display.Names(sum.Types), ", "))
	fmt.Fprintf(out, "Abilities: %s\n", strings.Join(display.Names(sum.Abilities), ", "))
	if len(sum.Weaknesses) == 0 {
		fmt.Fprintln(out, "No weaknesses found.")
		return nil
	}
	fmt.Fprintln(out, format.WeaknessTable(sum.Weaknesses, tableMode(weaknessFlags.markdown)))
	return nil
}

func runCatch(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	in := dex.CatchInput{
		MaxHP:     catchFlags.maxHP,
		CurrentHP: catchFlags.hp,
		Ball:      catchFlags.ball,
		Status:    catchFlags.status,
	}
	rep, err := newDex(api).Catch(cmd.Context(), args[0], in)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.CatchTable(rep, in, tableMode(catchFlags.markdown)))
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	d := newDex(api)
	m := tableMode(lookupFlags.markdown)
	out := cmd.OutOrStdout()

	switch kind, name := strings.ToLower(args[0]), args[1]; kind {
	case "move":
		mv, err := d.Move(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, format.MoveTable(mv, m))
	case "item":
		it, err := d.Item(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, format.ItemTable(it, m))
	case "ability":
		ab, err := d.Ability(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, format.AbilityTable(ab, m))
	default:
		return fmt.Errorf("unknown lookup kind %q (want move, item or ability)", kind)
	}
	return nil
}
