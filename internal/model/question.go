package model

// QuestionType tags reading/listening question blocks. Each block covers a
// numbered range and owns one subquestion per number, except MCQMultipleAnswer
// which always owns exactly one.
type QuestionType string

const (
	MCQ                 QuestionType = "mcq"
	MCQMultipleAnswer   QuestionType = "mcq_multiple_answer"
	TrueFalseNotGiven   QuestionType = "true_false_not_given"
	YesNoNotGiven       QuestionType = "yes_no_not_given"
	MatchingHeadings    QuestionType = "matching_headings"
	MatchingInformation QuestionType = "matching_information"
	OneWordAndOrNumber  QuestionType = "one_word_and_or_a_number"
	NoWordAndOrNumber   QuestionType = "no_word_and_or_a_number"
	OneWordOnly         QuestionType = "one_word_only"
)

func (t QuestionType) Valid() bool {
	switch t {
	case MCQ, MCQMultipleAnswer, TrueFalseNotGiven, YesNoNotGiven,
		MatchingHeadings, MatchingInformation, OneWordAndOrNumber,
		NoWordAndOrNumber, OneWordOnly:
		return true
	}
	return false
}
