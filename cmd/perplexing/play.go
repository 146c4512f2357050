package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/perplexing/command"
	"github.com/katalvlaran/perplexing/defuse"
	"github.com/katalvlaran/perplexing/puzzle"
	"github.com/spf13/cobra"
)

// newPlayCmd drives a defuse.Machine from text commands. Strikes and the
// solve are announced by the machine hooks, cut verdicts by runLine.
func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play [command...]",
		Short: "Play a module with text commands",
		Long: `Each argument is one command; without arguments commands are read from
standard input, one per line.

Commands:
  cut <n>...   cut wires by number, left to right starting at 1 ("cut 146" works too)
  colorblind   toggle colorblind mode (alias: cb)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.generate()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			m, err := defuse.New(p,
				defuse.WithLogger(a.logger),
				defuse.WithMetrics(a.metrics),
				defuse.WithOnStrike(func(pos int, _ puzzle.Requirement) {
					fmt.Fprintf(out, "STRIKE on wire %d\n", pos+1)
				}),
				defuse.WithOnSolve(func() { fmt.Fprintln(out, "module solved") }),
			)
			if err != nil {
				return err
			}
			s := command.NewSession(m)

			// arguments win over stdin
			if len(args) > 0 {
				for _, line := range args {
					runLine(out, s, line)
				}
			} else {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					runLine(out, s, sc.Text())
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "solved: %t strikes: %d\n", m.Solved(), m.Strikes())
			return nil
		},
	}
}

// runLine executes one command line and reports the outcome. Command errors
// are reported and do not end the game.
func runLine(out io.Writer, s *command.Session, line string) {
	cmd, err := command.Parse(line)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	res, err := s.Run(cmd)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}

	// colorblind mode lists wire colors as text
	if cmd.Kind == command.KindColorblind {
		fmt.Fprintf(out, "colorblind mode %s\n", onOff(s.Colorblind(), "on", "off"))
		if s.Colorblind() {
			for i, w := range s.Machine().Puzzle().Wires {
				fmt.Fprintf(out, "wire %d: %s\n", i+1, w.Color)
			}
		}
		return
	}
	for _, c := range res.Cuts {
		fmt.Fprintf(out, "wire %d: %s\n", c.Wire, c.Verdict)
	}
}
