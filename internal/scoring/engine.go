package scoring

import "ielts_edu_backend/internal/model"

// Result is the outcome of auto-scoring one objective attempt.
type Result struct {
	Band      float64 `json:"band"`
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
}

// Score grades a reading or listening attempt against the exam's answer key.
// The content tree is walked in display order (passage/audio, question,
// subquestion) so runs over the same data are reproducible. A subquestion
// with no submitted answer counts as incorrect. The function is pure: the
// exam tree is read-only and no error paths exist for malformed input.
//
// Callers must only pass exams whose section type is objective; any other
// section yields a zero band over zero subquestions.
func Score(exam *model.Exam, answers map[uint]model.AnswerValue) Result {
	correct := 0
	total := 0

	switch exam.SectionType {
	case model.SectionReading:
		for _, passage := range exam.ReadingPassages {
			for _, question := range passage.Questions {
				for _, sub := range question.SubQuestions {
					total++
					if submitted, ok := answers[sub.ID]; ok {
						if Normalize(submitted) == NormalizeOne(sub.CorrectAnswer) {
							correct++
						}
					}
				}
			}
		}
	case model.SectionListening:
		for _, audio := range exam.ListeningAudios {
			for _, question := range audio.Questions {
				for _, sub := range question.SubQuestions {
					total++
					if submitted, ok := answers[sub.ID]; ok {
						if Normalize(submitted) == NormalizeOne(sub.CorrectAnswer) {
							correct++
						}
					}
				}
			}
		}
	}

	return Result{
		Band:      BandFor(exam.SectionType, correct),
		Correct:   correct,
		Incorrect: total - correct,
	}
}
