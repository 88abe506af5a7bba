package quizgame

// QuestionPool holds an ordered list of questions. Insertion order is the
// order questions are asked in.
type QuestionPool struct {
	questions []Question
}

// NewQuestionPool creates an empty question pool
func NewQuestionPool() *QuestionPool {
	return &QuestionPool{
		questions: make([]Question, 0),
	}
}

// Add appends a question to the end of the pool
func (qp *QuestionPool) Add(question Question) {
	qp.questions = append(qp.questions, question)
}

// At returns the question at position i
func (qp *QuestionPool) At(i int) Question {
	return qp.questions[i]
}

// Size returns the number of questions in the pool
func (qp *QuestionPool) Size() int {
	return len(qp.questions)
}

// IsEmpty returns true if the pool is empty
func (qp *QuestionPool) IsEmpty() bool {
	return qp.Size() == 0
}

// All returns a copy of the questions in order
func (qp *QuestionPool) All() []Question {
	questions := make([]Question, len(qp.questions))
	copy(questions, qp.questions)
	return questions
}
