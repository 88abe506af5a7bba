package quizgame

import (
	"fmt"
	"io"
)

const (
	VerdictExcellent        = "EXCELLENT!"
	VerdictGood             = "GOOD"
	VerdictNeedsImprovement = "NEEDS IMPROVEMENT"
)

const banner = "============================================"

// Result is the outcome of one quiz run
type Result struct {
	Label string
	Score int
	Total int
}

// Percentage returns score as a percentage of total. An empty quiz scores 0.
func Percentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(score) * 100.0 / float64(total)
}

// Verdict maps a percentage onto its band. Lower bounds are inclusive.
func Verdict(percentage float64) string {
	switch {
	case percentage >= 80:
		return VerdictExcellent
	case percentage >= 50:
		return VerdictGood
	default:
		return VerdictNeedsImprovement
	}
}

// Percentage returns the run's score as a percentage
func (r Result) Percentage() float64 { return Percentage(r.Score, r.Total) }

// Verdict returns the band for the run's percentage
func (r Result) Verdict() string { return Verdict(r.Percentage()) }

// writeResults prints the results banner, up to and including the pause prompt
func writeResults(w io.Writer, r Result, noColor bool) {
	verdict := r.Verdict()

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "            %s QUIZ RESULTS\n", r.Label)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Score: %d / %d\n", r.Score, r.Total)
	fmt.Fprintf(w, "Percentage: %.2f%%\n", r.Percentage())
	fmt.Fprintln(w, stylize("Result: "+verdict, noColor, verdictColor(verdict)))
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Press Enter to return to Main Menu...")
}
