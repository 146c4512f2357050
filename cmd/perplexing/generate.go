package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/perplexing/puzzle"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a module and print its layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.generate()
			if err != nil {
				return err
			}
			printPuzzle(cmd.OutOrStdout(), p, reveal)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "show rules and the solution")
	return cmd
}

// onOff picks the label for a two-state panel element.
func onOff(b bool, on, off string) string {
	if b {
		return on
	}
	return off
}

// printPuzzle writes the panel state and the wires left to right. Rules,
// requirements and the solution are printed only with reveal.
func printPuzzle(w io.Writer, p *puzzle.Puzzle, reveal bool) {
	fmt.Fprintf(w, "module %s (attempts: %d)\n", p.ID, p.Attempts)

	leds := make([]string, len(p.LEDs))
	for i, on := range p.LEDs {
		leds[i] = onOff(on, "on", "off")
	}
	fmt.Fprintf(w, "leds:   %s\n", strings.Join(leds, " "))

	stars := make([]string, len(p.Stars))
	for i, filled := range p.Stars {
		stars[i] = onOff(filled, "filled", "empty")
	}
	fmt.Fprintf(w, "stars:  %s\n", strings.Join(stars, " "))

	arrows := make([]string, len(p.Arrows))
	for i, a := range p.Arrows {
		arrows[i] = a.Color.String() + "/" + a.Direction.String()
	}
	fmt.Fprintf(w, "arrows: %s\n", strings.Join(arrows, " "))

	for i, s := range p.Wires {
		// connectors are shown 1-based like wire numbers
		fmt.Fprintf(w, "wire %d: top %d -> bottom %d  %-6s level %d", i+1, s.Top+1, s.Bottom+1, s.Color, s.Level)
		if reveal {
			fmt.Fprintf(w, "  rule %s  %s", s.Rule, s.Requirement)
		}
		fmt.Fprintln(w)
	}
	if reveal {
		fmt.Fprintf(w, "solution: %s\n", strings.Trim(fmt.Sprint(p.Solution()), "[]"))
	}
}
