package quizgame

// NewMCQ builds a multiple choice question. The correct letter is not
// validated against the options; see CheckQuestion for an advisory check.
func NewMCQ(prompt, optionA, optionB, optionC, optionD, correctLetter string) Question {
	return &MCQQuestion{
		Text:          prompt,
		OptionA:       optionA,
		OptionB:       optionB,
		OptionC:       optionC,
		OptionD:       optionD,
		CorrectLetter: correctLetter,
	}
}

// NewTrueFalse builds a true/false question
func NewTrueFalse(prompt, correct string) Question {
	return &TrueFalseQuestion{
		Text:   prompt,
		Answer: correct,
	}
}
