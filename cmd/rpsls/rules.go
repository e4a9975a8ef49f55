package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rpsls/internal/games/rpsls"
)

var flagHand string

var rulesCmd = &cobra.Command{
	Use:   "rules [variant]",
	Short: "Show which hand beats which",
	Long: `Print the winning pairs of a variant (default: rpsls).

Examples:
  rpsls rules
  rpsls rules rps
  rpsls rules --hand spock`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&flagHand, "hand", "", "Only show what this hand beats and loses to")
}

func findVariant(id string) (rpsls.Variant, bool) {
	for _, v := range rpsls.Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return rpsls.Variant{}, false
}

func runRules(cmd *cobra.Command, args []string) error {
	id := rpsls.Classic.ID
	if len(args) > 0 {
		id = args[0]
	}
	v, ok := findVariant(id)
	if !ok {
		return fmt.Errorf("unknown variant %q, run 'rpsls list' to see available variants", id)
	}

	out := cmd.OutOrStdout()
	if flagHand != "" {
		h, err := rpsls.ParseHand(flagHand)
		if err != nil {
			return err
		}
		if !v.Allows(h) {
			return fmt.Errorf("%s is not played in %s", h, v.Title)
		}
		printHandRules(out, v, h)
		return nil
	}

	fmt.Fprintf(out, "%s\n\n", v.Title)
	for _, p := range rpsls.WinningPairs() {
		if !v.Allows(p[0]) || !v.Allows(p[1]) {
			continue
		}
		printPair(out, p[0], p[1])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Equal hands tie and score nothing.")
	return nil
}

func printPair(out io.Writer, winner, loser rpsls.Hand) {
	fmt.Fprintf(out, "  %-8s %-11s %s\n", winner, rpsls.Verb(winner, loser), loser)
}

// printHandRules lists the pairs of a variant that involve h.
func printHandRules(out io.Writer, v rpsls.Variant, h rpsls.Hand) {
	fmt.Fprintf(out, "%s in %s\n\n", h, v.Title)
	for _, loser := range h.Defeats() {
		if v.Allows(loser) {
			printPair(out, h, loser)
		}
	}
	for _, winner := range v.Hands {
		if rpsls.Beats(winner, h) {
			printPair(out, winner, h)
		}
	}
}
