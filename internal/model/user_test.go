package model

import "testing"

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role UserRole
		cap  Capability
		want bool
	}{
		{Student, CapSubmitAttempt, true},
		{Student, CapViewOwnStats, true},
		{Student, CapReviewAttempt, false},
		{Student, CapManageContent, false},
		{Mentor, CapReviewAttempt, true},
		{Mentor, CapViewOwnStats, true},
		{Mentor, CapSubmitAttempt, false},
		{Mentor, CapManageUsers, false},
		{Admin, CapManageContent, true},
		{Admin, CapManageUsers, true},
		{Admin, CapSubmitAttempt, false},
		{Admin, CapReviewAttempt, true},
		{UserRole("unknown"), CapSubmitAttempt, false},
	}
	for _, tt := range tests {
		if got := tt.role.Can(tt.cap); got != tt.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tt.role, tt.cap, got, tt.want)
		}
	}
}

func TestSectionTypeIsObjective(t *testing.T) {
	tests := []struct {
		section SectionType
		want    bool
	}{
		{SectionReading, true},
		{SectionListening, true},
		{SectionWriting, false},
		{SectionSpeaking, false},
	}
	for _, tt := range tests {
		if got := tt.section.IsObjective(); got != tt.want {
			t.Errorf("%s.IsObjective() = %v, want %v", tt.section, got, tt.want)
		}
	}
}

func TestSpeakingPartQuestionsList(t *testing.T) {
	part := SpeakingPart{Questions: "What is your name?\n\n  Where do you live?  \n"}
	got := part.QuestionsList()
	if len(got) != 2 {
		t.Fatalf("QuestionsList() = %v, want 2 prompts", got)
	}
	if got[1] != "Where do you live?" {
		t.Errorf("trimming failed: %q", got[1])
	}
}
