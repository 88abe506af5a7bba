package quizgame

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPrompt indicates a question without any text
	ErrEmptyPrompt = errors.New("question has no prompt")
	// ErrUnknownOption indicates an MCQ whose correct letter is not A, B, C or D
	ErrUnknownOption = errors.New("correct letter does not name an option")
	// ErrNotBoolean indicates a true/false question whose answer is neither true nor false
	ErrNotBoolean = errors.New("correct answer is not true or false")
)

// CheckQuestion reports configuration problems that make a question
// unwinnable or confusing. It is advisory: questions are loaded and asked
// regardless of the result.
func CheckQuestion(question Question) error {
	if strings.TrimSpace(question.Prompt()) == "" {
		return ErrEmptyPrompt
	}

	switch q := question.(type) {
	case *MCQQuestion:
		letter := strings.ToUpper(strings.TrimSpace(q.CorrectLetter))
		if len(letter) != 1 || !strings.Contains("ABCD", letter) {
			return fmt.Errorf("%q: %w", q.CorrectLetter, ErrUnknownOption)
		}
		// An exact match with surrounding spaces can never be typed back
		if letter != strings.ToUpper(q.CorrectLetter) {
			return fmt.Errorf("%q has surrounding whitespace: %w", q.CorrectLetter, ErrUnknownOption)
		}
	case *TrueFalseQuestion:
		if !strings.EqualFold(q.Answer, "true") && !strings.EqualFold(q.Answer, "false") {
			return fmt.Errorf("%q: %w", q.Answer, ErrNotBoolean)
		}
	}
	return nil
}
