package scoring

import (
	"testing"

	"ielts_edu_backend/internal/model"
)

func sub(id uint, answer string) model.ReadingSubQuestion {
	s := model.ReadingSubQuestion{CorrectAnswer: answer}
	s.ID = id
	return s
}

func readingExam(subs ...model.ReadingSubQuestion) *model.Exam {
	return &model.Exam{
		SectionType: model.SectionReading,
		ReadingPassages: []model.ReadingPassage{
			{Questions: []model.ReadingQuestion{{SubQuestions: subs}}},
		},
	}
}

func TestScoreMixedAttempt(t *testing.T) {
	// One right ("A" vs key "a."), one wrong: 1 correct out of 2 lands on
	// the floor of the reading chart.
	exam := readingExam(sub(1, "a."), sub(2, "library"))
	answers := map[uint]model.AnswerValue{
		1: {"A"},
		2: {"museum"},
	}

	result := Score(exam, answers)
	if result.Correct != 1 {
		t.Errorf("Correct = %d, want 1", result.Correct)
	}
	if result.Incorrect != 1 {
		t.Errorf("Incorrect = %d, want 1", result.Incorrect)
	}
	if result.Band != 1.0 {
		t.Errorf("Band = %v, want 1.0", result.Band)
	}
}

func TestScoreUnansweredCountsIncorrect(t *testing.T) {
	exam := readingExam(sub(1, "a"), sub(2, "b"), sub(3, "c"))
	answers := map[uint]model.AnswerValue{1: {"A"}}

	result := Score(exam, answers)
	if result.Correct != 1 || result.Incorrect != 2 {
		t.Errorf("got %d correct / %d incorrect, want 1 / 2", result.Correct, result.Incorrect)
	}
}

func TestScoreEmptyAnswers(t *testing.T) {
	exam := readingExam(sub(1, "a"), sub(2, "b"))
	result := Score(exam, nil)
	if result.Correct != 0 || result.Incorrect != 2 || result.Band != 1.0 {
		t.Errorf("Score with no answers = %+v, want 0 correct, 2 incorrect, band 1.0", result)
	}
}

func TestScoreStrayAnswersIgnored(t *testing.T) {
	// Answers keyed to subquestions outside the exam tree never count.
	exam := readingExam(sub(1, "a"))
	answers := map[uint]model.AnswerValue{
		1:   {"a"},
		999: {"a"},
	}
	result := Score(exam, answers)
	if result.Correct != 1 || result.Incorrect != 0 {
		t.Errorf("got %d correct / %d incorrect, want 1 / 0", result.Correct, result.Incorrect)
	}
}

func TestScoreTextualAnswerComparesFullText(t *testing.T) {
	exam := readingExam(sub(1, "15 minutes"))

	result := Score(exam, map[uint]model.AnswerValue{1: {" 15 MINUTES "}})
	if result.Correct != 1 {
		t.Errorf("digit-led answers should compare trimmed and lowercased, got %+v", result)
	}

	result = Score(exam, map[uint]model.AnswerValue{1: {"15"}})
	if result.Correct != 0 {
		t.Errorf("partial numeric answer should not match, got %+v", result)
	}
}

func TestScoreListeningWalksAudioTree(t *testing.T) {
	makeSub := func(id uint, answer string) model.ListeningSubQuestion {
		s := model.ListeningSubQuestion{CorrectAnswer: answer}
		s.ID = id
		return s
	}
	exam := &model.Exam{
		SectionType: model.SectionListening,
		ListeningAudios: []model.ListeningAudio{
			{Questions: []model.ListeningQuestion{{SubQuestions: []model.ListeningSubQuestion{
				makeSub(10, "a"), makeSub(11, "b"),
			}}}},
			{Questions: []model.ListeningQuestion{{SubQuestions: []model.ListeningSubQuestion{
				makeSub(12, "c"),
			}}}},
		},
	}
	answers := map[uint]model.AnswerValue{
		10: {"A"},
		11: {"b"},
		12: {"wrong"},
	}

	result := Score(exam, answers)
	if result.Correct != 2 || result.Incorrect != 1 {
		t.Errorf("got %d correct / %d incorrect, want 2 / 1", result.Correct, result.Incorrect)
	}
	if result.Band != BandFor(model.SectionListening, 2) {
		t.Errorf("Band = %v, want listening chart value for 2 correct", result.Band)
	}
}

func TestScoreMultiValuedAnswerUsesFirst(t *testing.T) {
	exam := readingExam(sub(1, "a"))
	answers := map[uint]model.AnswerValue{1: {"b", "a"}}
	if result := Score(exam, answers); result.Correct != 0 {
		t.Errorf("only the first submitted value should be graded, got %+v", result)
	}
}

func TestScoreNonObjectiveExam(t *testing.T) {
	exam := &model.Exam{SectionType: model.SectionWriting}
	result := Score(exam, nil)
	if result.Band != 0.0 || result.Correct != 0 || result.Incorrect != 0 {
		t.Errorf("Score on a writing exam = %+v, want zero result", result)
	}
}
