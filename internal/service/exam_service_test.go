package service

import (
	"testing"

	"ielts_edu_backend/internal/model"
)

func TestNormalizeQuestionRange(t *testing.T) {
	tests := []struct {
		name               string
		start, end         int
		wantStart, wantEnd int
	}{
		{"normal range", 1, 5, 1, 5},
		{"single number", 3, 3, 3, 3},
		{"missing end", 4, 0, 4, 4},
		{"inverted range", 5, 3, 5, 5},
		{"zero range untouched", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := NormalizeQuestionRange(tt.start, tt.end)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("NormalizeQuestionRange(%d, %d) = (%d, %d), want (%d, %d)",
					tt.start, tt.end, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRequiredSubQuestionCount(t *testing.T) {
	tests := []struct {
		name         string
		questionType model.QuestionType
		start, end   int
		want         int
	}{
		{"mcq range", model.MCQ, 1, 5, 5},
		{"single question", model.MCQ, 7, 7, 1},
		{"one word range", model.OneWordOnly, 11, 13, 3},
		{"multi-answer collapses to one", model.MCQMultipleAnswer, 1, 5, 1},
		{"multi-answer single", model.MCQMultipleAnswer, 4, 4, 1},
		{"unset range", model.MCQ, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequiredSubQuestionCount(tt.questionType, tt.start, tt.end); got != tt.want {
				t.Errorf("RequiredSubQuestionCount(%s, %d, %d) = %d, want %d",
					tt.questionType, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestReconcileSubQuestions(t *testing.T) {
	tests := []struct {
		name       string
		required   int
		existing   []uint
		wantCreate int
		wantDelete []uint
	}{
		{"grow from empty", 3, nil, 3, nil},
		{"grow from some", 5, []uint{1, 2}, 3, nil},
		{"exact fit", 2, []uint{1, 2}, 0, nil},
		{"shrink keeps leading rows", 2, []uint{1, 2, 3, 4}, 0, []uint{3, 4}},
		{"shrink to zero", 0, []uint{1, 2}, 0, []uint{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ReconcileSubQuestions(tt.required, tt.existing)
			if plan.ToCreate != tt.wantCreate {
				t.Errorf("ToCreate = %d, want %d", plan.ToCreate, tt.wantCreate)
			}
			if len(plan.ToDelete) != len(tt.wantDelete) {
				t.Fatalf("ToDelete = %v, want %v", plan.ToDelete, tt.wantDelete)
			}
			for i, id := range tt.wantDelete {
				if plan.ToDelete[i] != id {
					t.Errorf("ToDelete[%d] = %d, want %d", i, plan.ToDelete[i], id)
				}
			}
		})
	}
}

func TestReconcileNeverCreatesAndDeletes(t *testing.T) {
	for required := 0; required <= 6; required++ {
		for existing := 0; existing <= 6; existing++ {
			ids := make([]uint, existing)
			for i := range ids {
				ids[i] = uint(i + 1)
			}
			plan := ReconcileSubQuestions(required, ids)
			if plan.ToCreate > 0 && len(plan.ToDelete) > 0 {
				t.Fatalf("required=%d existing=%d: plan both creates and deletes", required, existing)
			}
			if existing-len(plan.ToDelete)+plan.ToCreate != required {
				t.Fatalf("required=%d existing=%d: plan does not converge", required, existing)
			}
		}
	}
}
