package quizgame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

const (
	LabelMCQ       = "MCQ"
	LabelTrueFalse = "TRUE/FALSE"
)

// GameManager runs the menu loop and the quizzes. main builds exactly one
// and passes it around; there is no package level instance.
type GameManager struct {
	mcq       *QuestionPool
	trueFalse *QuestionPool
	dedup     *QuestionDedup

	reader  *bufio.Reader
	readErr error
	out     io.Writer
	noColor bool
}

// Option configures a GameManager
type Option func(*GameManager)

// WithColor enables coloured feedback and verdict lines
func WithColor(enabled bool) Option {
	return func(gm *GameManager) {
		gm.noColor = !enabled
	}
}

// NewGameManager creates a game that reads answers from in and writes to out.
// Questions must be loaded with LoadQuestions before StartGame.
func NewGameManager(in io.Reader, out io.Writer, opts ...Option) *GameManager {
	gm := &GameManager{
		mcq:       NewQuestionPool(),
		trueFalse: NewQuestionPool(),
		dedup:     NewQuestionDedup(),
		reader:    bufio.NewReader(in),
		out:       out,
		noColor:   true,
	}
	for _, opt := range opts {
		opt(gm)
	}
	return gm
}

// LoadQuestions appends the fixed catalog to both question lists.
// Calling it twice loads every question twice.
func (gm *GameManager) LoadQuestions() {
	gm.load(gm.mcq, LabelMCQ, JavaMCQQuestions())
	gm.load(gm.trueFalse, LabelTrueFalse, JavaTrueFalseQuestions())
	VerboseLog("Questions loaded", "mcq", gm.mcq.Size(), "true_false", gm.trueFalse.Size())
}

func (gm *GameManager) load(pool *QuestionPool, label string, questions []Question) {
	for _, q := range questions {
		position := pool.Size()
		if err := CheckQuestion(q); err != nil {
			WarnLog("Question may be unanswerable", "quiz", label, "question", position+1, "error", err)
		}
		if res := gm.dedup.CheckDuplicate(q, position); res.IsDuplicate {
			WarnLog("Duplicate question loaded", "quiz", label, "question", position+1, "duplicate_of", res.DuplicateOf+1)
		}
		pool.Add(q)
	}
}

// MCQQuestions returns the loaded multiple choice questions in order
func (gm *GameManager) MCQQuestions() []Question { return gm.mcq.All() }

// TrueFalseQuestions returns the loaded true/false questions in order
func (gm *GameManager) TrueFalseQuestions() []Question { return gm.trueFalse.All() }

// StartGame shows the menu until the player exits. Running out of input ends
// the game like choosing Exit, without the farewell.
func (gm *GameManager) StartGame() error {
	for {
		gm.displayMenu()
		choice, ok := gm.readLine()
		if !ok {
			return gm.inputErr()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := gm.runQuiz(gm.mcq, LabelMCQ); err != nil {
				return err
			}
		case "2":
			if err := gm.runQuiz(gm.trueFalse, LabelTrueFalse); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(gm.out, "\nThank you for playing! Goodbye!")
			fmt.Fprintln(gm.out)
			return nil
		default:
			fmt.Fprintln(gm.out, "\nInvalid choice! Please enter 1, 2, or 3.")
			fmt.Fprintln(gm.out)
		}
	}
}

func (gm *GameManager) displayMenu() {
	fmt.Fprintln(gm.out)
	fmt.Fprintln(gm.out, banner)
	fmt.Fprintln(gm.out, "         JAVA QUIZ GAME - MAIN MENU         ")
	fmt.Fprintln(gm.out, banner)
	fmt.Fprintln(gm.out, "  1. MCQ Quiz")
	fmt.Fprintln(gm.out, "  2. True/False Quiz")
	fmt.Fprintln(gm.out, "  3. Exit")
	fmt.Fprintln(gm.out, banner)
	fmt.Fprint(gm.out, "Enter your choice (1/2/3): ")
}

// runQuiz asks every question in pool order and then shows the results
func (gm *GameManager) runQuiz(pool *QuestionPool, label string) error {
	runID := uuid.NewString()
	total := pool.Size()
	score := 0

	VerboseLog("Quiz started", "run_id", runID, "quiz", label, "total", total)

	fmt.Fprintf(gm.out, "\n========== %s QUIZ ==========\n", label)
	fmt.Fprintf(gm.out, "Total questions: %d\n", total)

	for i := 0; i < total; i++ {
		fmt.Fprintf(gm.out, "\nQuestion %d of %d\n", i+1, total)

		q := pool.At(i)
		q.Ask(gm.out)

		// Trimming is left to CheckAnswer; a missing line is an absent answer
		answer, ok := gm.readLine()
		if !ok {
			if err := gm.inputErr(); err != nil {
				return err
			}
		}

		if q.CheckAnswer(answer) {
			fmt.Fprintln(gm.out, stylize("Correct!", gm.noColor, colorCorrect))
			score++
		} else {
			fmt.Fprintln(gm.out, stylize("Wrong! Correct answer: "+q.CorrectAnswer(), gm.noColor, colorWrong))
		}
		VerboseLog("Question answered", "run_id", runID, "question", i+1, "score", score)
	}

	return gm.displayResults(Result{Label: label, Score: score, Total: total}, runID)
}

// displayResults prints the banner and waits for one line before returning
func (gm *GameManager) displayResults(r Result, runID string) error {
	VerboseLog("Quiz finished", "run_id", runID, "quiz", r.Label, "score", r.Score, "total", r.Total,
		"verdict", r.Verdict())

	writeResults(gm.out, r, gm.noColor)

	if _, ok := gm.readLine(); !ok {
		return gm.inputErr()
	}
	return nil
}

// readLine returns the next input line without its line ending. Lines have
// no length limit. It returns false once input is exhausted or fails.
func (gm *GameManager) readLine() (string, bool) {
	if gm.readErr != nil {
		return "", false
	}
	line, err := gm.reader.ReadString('\n')
	if err != nil {
		gm.readErr = err
		// A final line without a newline still counts
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), true
		}
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// inputErr returns the read error, or nil at end of input
func (gm *GameManager) inputErr() error {
	if gm.readErr != nil && !errors.Is(gm.readErr, io.EOF) {
		return fmt.Errorf("failed to read input: %w", gm.readErr)
	}
	return nil
}
