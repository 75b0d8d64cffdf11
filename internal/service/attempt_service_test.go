package service

import (
	"mime/multipart"
	"net/url"
	"testing"

	"ielts_edu_backend/internal/model"
)

func TestDecodeAnswerForm(t *testing.T) {
	form := url.Values{
		"q_12":       {"A"},
		"q_13[]":     {"B", "C"},
		"task_3":     {"My essay text"},
		"part_7":     {"notes for part seven"},
		"q_abc":      {"ignored"},
		"csrf_token": {"ignored"},
		"q_":         {"ignored"},
	}

	set := DecodeAnswerForm(form)

	if len(set.Objective) != 2 {
		t.Fatalf("Objective has %d entries, want 2", len(set.Objective))
	}
	if got := set.Objective[12].First(); got != "A" {
		t.Errorf("Objective[12] = %q, want A", got)
	}
	if got := set.Objective[13]; len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("Objective[13] = %v, want all submitted values kept", got)
	}
	if got := set.Writing[3]; got != "My essay text" {
		t.Errorf("Writing[3] = %q", got)
	}
	if got := set.Speaking[7]; got != "notes for part seven" {
		t.Errorf("Speaking[7] = %q", got)
	}
}

func TestDecodeAnswerFormEmpty(t *testing.T) {
	set := DecodeAnswerForm(url.Values{})
	if !set.IsEmpty() {
		t.Errorf("expected empty answer set, got %+v", set)
	}
	if set.Objective == nil || set.Writing == nil || set.Speaking == nil {
		t.Error("maps must be initialized even when empty")
	}
}

func TestParseAudioField(t *testing.T) {
	tests := []struct {
		field  string
		wantID int
		wantOK bool
	}{
		{"part_5_audio", 5, true},
		{"part_12_audio", 12, true},
		{"5_audio", 5, true},
		{"part_5", 0, false},
		{"part_x_audio", 0, false},
		{"_audio", 0, false},
		{"", 0, false},
		{"q_5", 0, false},
	}
	for _, tt := range tests {
		id, ok := ParseAudioField(tt.field)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ParseAudioField(%q) = (%d, %v), want (%d, %v)",
				tt.field, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestCollectAudioUploads(t *testing.T) {
	files := map[string][]*multipart.FileHeader{
		"part_1_audio": {{Filename: "one.webm"}},
		"part_2_audio": {{Filename: "two.webm"}},
		"part_bad":     {{Filename: "skipped.webm"}},
		"part_3_audio": {},
	}

	uploads := CollectAudioUploads(files)
	if len(uploads) != 2 {
		t.Fatalf("got %d uploads, want 2", len(uploads))
	}
	seen := map[int]bool{}
	for _, u := range uploads {
		seen[u.PartID] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("uploads missing expected parts: %v", seen)
	}
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		status model.AttemptStatus
		want   bool
	}{
		{model.AttemptInProgress, true},
		{model.AttemptSubmitted, false},
		{model.AttemptCompleted, false},
	}
	for _, tt := range tests {
		if got := CanSubmit(tt.status); got != tt.want {
			t.Errorf("CanSubmit(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
