package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlehelp/internal/constraint"
	"github.com/verte-zerg/wordlehelp/internal/report"
	"github.com/verte-zerg/wordlehelp/internal/solver"
)

var (
	solveKnown     string
	solveMisplaced string
	solveExcluded  string
	solveShow      int
	solveColor     bool
	solveLetters   int
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print ranked candidates for a set of constraints",
		Example: `  wordlehelp solve --known an___ --excluded p
  wordlehelp solve --misplaced "e,,r,," --excluded stx --show 20`,
		Args: cobra.NoArgs,
		RunE: runSolveCmd,
	}
	cmd.Flags().StringVar(&solveKnown, "known", "", "known letters by slot, '_' for unknown (e.g. an___)")
	cmd.Flags().StringVar(&solveMisplaced, "misplaced", "", "comma-separated misplaced letter groups per slot (e.g. e,,r,,)")
	cmd.Flags().StringVar(&solveExcluded, "excluded", "", "letters not in the word")
	cmd.Flags().IntVar(&solveShow, "show", defaultShow, "max candidates to print (0 for all)")
	cmd.Flags().BoolVar(&solveColor, "color", false, "highlight known and misplaced letters")
	cmd.Flags().IntVar(&solveLetters, "letters", 0, "also print the N letters found in the most candidates")
	return cmd
}

func runSolveCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadHelperConfig(cmd, &solveShow)
	if err != nil {
		return err
	}
	set, err := constraint.Parse(solveKnown, splitMisplaced(solveMisplaced), solveExcluded)
	if err != nil {
		return fmt.Errorf("invalid constraints: %w", err)
	}
	words, _, err := loadWordList(cfg)
	if err != nil {
		return err
	}

	res := solver.Candidates(words, set)
	shown := res.Words
	if cfg.Show > 0 && len(shown) > cfg.Show {
		shown = shown[:cfg.Show]
	}

	var style func(string) string
	if solveColor {
		color.NoColor = false
		style = func(w string) string { return report.Highlight(w, set) }
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, report.CountLine(res.Count)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, line := range report.ColumnsStyled(shown, report.TerminalWidth(80), style) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if len(shown) < res.Count {
		if _, err := fmt.Fprintf(out, "... %d more\n", res.Count-len(shown)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if top := solver.TopLetters(res.Words, solveLetters); len(top) > 0 {
		parts := make([]string, len(top))
		for i, lc := range top {
			parts[i] = fmt.Sprintf("%c(%d)", lc.Letter, lc.Words)
		}
		if _, err := fmt.Fprintf(out, "Common letters: %s\n", strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// splitMisplaced turns "e,,r" into one group per slot.
func splitMisplaced(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return strings.Split(value, ",")
}
