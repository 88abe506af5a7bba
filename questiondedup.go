package quizgame

import "strings"

// QuestionDedup remembers the prompts it has seen so repeated loads can be
// reported. It never removes anything.
type QuestionDedup struct {
	seen map[string]int // normalized prompt -> first position
}

// NewQuestionDedup creates an empty deduplicator
func NewQuestionDedup() *QuestionDedup {
	return &QuestionDedup{
		seen: make(map[string]int),
	}
}

// DedupResult represents the result of a duplicate check
type DedupResult struct {
	IsDuplicate bool
	DuplicateOf int // position of the first question with the same prompt
}

// CheckDuplicate records the question at position and reports whether an
// earlier question had the same prompt and kind.
func (qd *QuestionDedup) CheckDuplicate(question Question, position int) DedupResult {
	key := string(question.Kind()) + "|" + strings.ToLower(strings.TrimSpace(question.Prompt()))
	if first, ok := qd.seen[key]; ok {
		return DedupResult{IsDuplicate: true, DuplicateOf: first}
	}
	qd.seen[key] = position
	return DedupResult{}
}
