package quizgame

import "testing"

// TestCheckDuplicate verifies repeated prompts are reported against their first position.
func TestCheckDuplicate(t *testing.T) {
	qd := NewQuestionDedup()

	if res := qd.CheckDuplicate(NewTrueFalse("Java is fun.", "true"), 0); res.IsDuplicate {
		t.Fatalf("first question must not be a duplicate")
	}
	if res := qd.CheckDuplicate(NewTrueFalse("Go is fun.", "true"), 1); res.IsDuplicate {
		t.Fatalf("different prompt must not be a duplicate")
	}

	res := qd.CheckDuplicate(NewTrueFalse(" java is FUN. ", "false"), 2)
	if !res.IsDuplicate {
		t.Fatalf("expected duplicate")
	}
	if res.DuplicateOf != 0 {
		t.Fatalf("expected duplicate of 0, got %d", res.DuplicateOf)
	}
}

// TestCheckDuplicateSeparatesKinds verifies the same text in different variants is not a duplicate.
func TestCheckDuplicateSeparatesKinds(t *testing.T) {
	qd := NewQuestionDedup()
	qd.CheckDuplicate(NewTrueFalse("Same text", "true"), 0)
	if res := qd.CheckDuplicate(NewMCQ("Same text", "a", "b", "c", "d", "A"), 0); res.IsDuplicate {
		t.Fatalf("expected kinds to be tracked separately")
	}
}
