package quizgame

import (
	"fmt"
	"io"
	"strings"
)

// QuestionKind identifies which variant a Question is
type QuestionKind string

const (
	KindMCQ       QuestionKind = "mcq"
	KindTrueFalse QuestionKind = "true_false"
)

// Question is the capability set every quiz question provides
type Question interface {
	// Ask writes the question and its input prompt to w
	Ask(w io.Writer)
	// CheckAnswer reports whether answer matches the correct answer,
	// ignoring case and surrounding whitespace
	CheckAnswer(answer string) bool
	// CorrectAnswer returns the correct answer exactly as it was built
	CorrectAnswer() string
	// Prompt returns the question text
	Prompt() string
	// Kind identifies the variant
	Kind() QuestionKind
}

const questionRule = "----------------------------------------"

var optionLetters = []string{"A", "B", "C", "D"}

// MCQQuestion is a multiple choice question with four lettered options
type MCQQuestion struct {
	Text          string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectLetter string
}

// Ask prints the prompt, the four lettered options and the input prompt
func (q *MCQQuestion) Ask(w io.Writer) {
	fmt.Fprintln(w, questionRule)
	fmt.Fprintf(w, "MCQ: %s\n", q.Text)
	for i, option := range q.Options() {
		fmt.Fprintf(w, "%s) %s\n", optionLetters[i], option)
	}
	fmt.Fprint(w, "Your answer (A/B/C/D): ")
}

// CheckAnswer compares answer with the correct letter
func (q *MCQQuestion) CheckAnswer(answer string) bool {
	return answerMatches(q.CorrectLetter, answer)
}

// CorrectAnswer returns the correct letter as built
func (q *MCQQuestion) CorrectAnswer() string { return q.CorrectLetter }

// Prompt returns the question text
func (q *MCQQuestion) Prompt() string { return q.Text }

// Kind returns KindMCQ
func (q *MCQQuestion) Kind() QuestionKind { return KindMCQ }

// Options returns the four option texts in A..D order
func (q *MCQQuestion) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// TrueFalseQuestion is a question answered with "true" or "false"
type TrueFalseQuestion struct {
	Text   string
	Answer string
}

// Ask prints the prompt and the true/false input prompt
func (q *TrueFalseQuestion) Ask(w io.Writer) {
	fmt.Fprintln(w, questionRule)
	fmt.Fprintf(w, "True/False: %s\n", q.Text)
	fmt.Fprint(w, "Your answer (true/false): ")
}

// CheckAnswer compares answer with the stored answer text
func (q *TrueFalseQuestion) CheckAnswer(answer string) bool {
	return answerMatches(q.Answer, answer)
}

// CorrectAnswer returns the stored answer text as built
func (q *TrueFalseQuestion) CorrectAnswer() string { return q.Answer }

// Prompt returns the question text
func (q *TrueFalseQuestion) Prompt() string { return q.Text }

// Kind returns KindTrueFalse
func (q *TrueFalseQuestion) Kind() QuestionKind { return KindTrueFalse }

// answerMatches applies the shared comparison rule. An answer that is empty
// after trimming counts as absent and never matches, even against an empty
// correct answer.
func answerMatches(correct, answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	return strings.EqualFold(correct, answer)
}
