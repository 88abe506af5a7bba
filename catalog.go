package quizgame

// JavaMCQQuestions returns the fixed multiple choice catalog in display order
func JavaMCQQuestions() []Question {
	return []Question{
		NewMCQ("What is the size of int in Java?",
			"8 bit", "16 bit", "32 bit", "64 bit", "C"),
		NewMCQ("Which keyword is used to inherit a class in Java?",
			"implement", "inherits", "extends", "instanceof", "C"),
		NewMCQ("Which of these is NOT a Java primitive type?",
			"int", "boolean", "String", "char", "C"),
		NewMCQ("What is the default value of a boolean in Java?",
			"true", "false", "null", "0", "B"),
		NewMCQ("Which method is the entry point of a Java program?",
			"start()", "main()", "run()", "init()", "B"),
	}
}

// JavaTrueFalseQuestions returns the fixed true/false catalog in display order
func JavaTrueFalseQuestions() []Question {
	return []Question{
		NewTrueFalse("Java is a platform independent language.", "true"),
		NewTrueFalse("In Java, '==' compares the content of two Strings.", "false"),
		NewTrueFalse("A class can extend multiple classes in Java.", "false"),
		NewTrueFalse("The 'final' keyword prevents a variable from being changed.", "true"),
		NewTrueFalse("Java supports operator overloading.", "false"),
	}
}
