package quizgame

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorGood    = lipgloss.Color("220")
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// ColorEnabled decides whether output written to w should be coloured.
// Colour is only used on a terminal and never when NO_COLOR is non-empty.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(w)
}

func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func verdictColor(verdict string) lipgloss.Color {
	switch verdict {
	case VerdictExcellent:
		return colorCorrect
	case VerdictGood:
		return colorGood
	default:
		return colorWrong
	}
}
