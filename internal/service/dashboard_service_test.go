package service

import (
	"testing"

	"ielts_edu_backend/internal/model"
)

func attemptWith(section model.SectionType, status model.AttemptStatus, score *float64) model.Attempt {
	return model.Attempt{
		Exam:       &model.Exam{SectionType: section},
		Status:     status,
		TotalScore: score,
	}
}

func score(v float64) *float64 { return &v }

func TestComputeStudentStatsEmpty(t *testing.T) {
	stats := computeStudentStats(nil)
	if stats.TotalAttempts != 0 || stats.CompletedAttempts != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
	if stats.AverageScore != 0 || stats.SuccessRate != 0 {
		t.Errorf("empty stats should carry zero averages, got %+v", stats)
	}
	if len(stats.Sections) != 4 {
		t.Errorf("expected one progress row per section, got %d", len(stats.Sections))
	}
}

func TestComputeStudentStats(t *testing.T) {
	attempts := []model.Attempt{
		attemptWith(model.SectionReading, model.AttemptCompleted, score(7.0)),
		attemptWith(model.SectionReading, model.AttemptCompleted, score(6.0)),
		attemptWith(model.SectionListening, model.AttemptCompleted, score(6.5)),
		attemptWith(model.SectionWriting, model.AttemptSubmitted, nil),
	}

	stats := computeStudentStats(attempts)

	if stats.TotalAttempts != 4 || stats.CompletedAttempts != 3 {
		t.Errorf("counts = %d total / %d completed, want 4 / 3", stats.TotalAttempts, stats.CompletedAttempts)
	}
	// (7.0 + 6.0 + 6.5) / 3 = 6.5
	if stats.AverageScore != 6.5 {
		t.Errorf("AverageScore = %v, want 6.5", stats.AverageScore)
	}
	if stats.SuccessRate != 75 {
		t.Errorf("SuccessRate = %d, want 75", stats.SuccessRate)
	}

	bySection := map[model.SectionType]SectionProgress{}
	for _, s := range stats.Sections {
		bySection[s.Section] = s
	}
	if reading := bySection[model.SectionReading]; reading.Total != 2 || reading.Completed != 2 || reading.AverageScore != 6.5 {
		t.Errorf("reading progress = %+v", reading)
	}
	if writing := bySection[model.SectionWriting]; writing.Total != 1 || writing.Completed != 0 || writing.Percentage != 0 {
		t.Errorf("writing progress = %+v", writing)
	}
}

// A completed attempt without a total score must not drag the section
// average toward zero.
func TestComputeStudentStatsUnscoredCompleted(t *testing.T) {
	attempts := []model.Attempt{
		attemptWith(model.SectionReading, model.AttemptCompleted, score(7.0)),
		attemptWith(model.SectionReading, model.AttemptCompleted, score(6.0)),
		attemptWith(model.SectionReading, model.AttemptCompleted, nil),
	}

	stats := computeStudentStats(attempts)

	var reading SectionProgress
	for _, s := range stats.Sections {
		if s.Section == model.SectionReading {
			reading = s
		}
	}
	if reading.Completed != 3 {
		t.Errorf("Completed = %d, want 3", reading.Completed)
	}
	// (7.0 + 6.0) / 2, not / 3
	if reading.AverageScore != 6.5 {
		t.Errorf("AverageScore = %v, want 6.5", reading.AverageScore)
	}
	if stats.AverageScore != 6.5 {
		t.Errorf("overall AverageScore = %v, want 6.5", stats.AverageScore)
	}
}
