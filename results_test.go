package quizgame

import (
	"bytes"
	"testing"
)

// TestVerdictBands verifies the band boundaries are inclusive lower bounds.
func TestVerdictBands(t *testing.T) {
	cases := []struct {
		score, total int
		want         string
	}{
		{5, 5, VerdictExcellent},
		{4, 5, VerdictExcellent},
		{8, 10, VerdictExcellent},
		{3, 5, VerdictGood},
		{1, 2, VerdictGood},
		{5, 10, VerdictGood},
		{2, 5, VerdictNeedsImprovement},
		{0, 5, VerdictNeedsImprovement},
	}
	for _, c := range cases {
		got := Verdict(Percentage(c.score, c.total))
		if got != c.want {
			t.Fatalf("%d/%d: expected %s, got %s", c.score, c.total, c.want, got)
		}
	}
}

// TestPercentageEmptyQuiz verifies an empty quiz scores zero instead of dividing by zero.
func TestPercentageEmptyQuiz(t *testing.T) {
	if p := Percentage(0, 0); p != 0 {
		t.Fatalf("expected 0, got %v", p)
	}
}

// TestWriteResults verifies the exact plain results banner.
func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	writeResults(&buf, Result{Label: LabelTrueFalse, Score: 2, Total: 5}, true)

	want := "\n" +
		"============================================\n" +
		"            TRUE/FALSE QUIZ RESULTS\n" +
		"============================================\n" +
		"Score: 2 / 5\n" +
		"Percentage: 40.00%\n" +
		"Result: NEEDS IMPROVEMENT\n" +
		"============================================\n" +
		"\n" +
		"Press Enter to return to Main Menu...\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

// TestWriteResultsRoundsToTwoPlaces verifies percentages are printed with two decimals.
func TestWriteResultsRoundsToTwoPlaces(t *testing.T) {
	var buf bytes.Buffer
	writeResults(&buf, Result{Label: LabelMCQ, Score: 2, Total: 3}, true)
	if !bytes.Contains(buf.Bytes(), []byte("Percentage: 66.67%\n")) {
		t.Fatalf("expected 66.67%%, got %q", buf.String())
	}
}
