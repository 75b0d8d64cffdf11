package model

import "testing"

func TestAnswerSetRoundTrip(t *testing.T) {
	set := AnswerSet{
		Objective: map[uint]AnswerValue{12: {"A"}, 13: {"B", "C"}},
		Writing:   map[uint]string{3: "essay"},
		Speaking:  map[uint]string{7: "notes"},
	}

	decoded := DecodeAnswerSet(set.Encode())
	if got := decoded.Objective[12].First(); got != "A" {
		t.Errorf("Objective[12] = %q, want A", got)
	}
	if got := decoded.Objective[13]; len(got) != 2 {
		t.Errorf("Objective[13] lost values: %v", got)
	}
	if decoded.Writing[3] != "essay" || decoded.Speaking[7] != "notes" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestDecodeAnswerSetTolerant(t *testing.T) {
	for _, raw := range []string{"", "not json", "[1,2,3]", "{\"objective\": \"bad\"}"} {
		set := DecodeAnswerSet(raw)
		if !set.IsEmpty() {
			t.Errorf("DecodeAnswerSet(%q) = %+v, want empty set", raw, set)
		}
	}
}

func TestAnswerValueFirst(t *testing.T) {
	if got := (AnswerValue{}).First(); got != "" {
		t.Errorf("empty First() = %q", got)
	}
	if got := (AnswerValue{"x", "y"}).First(); got != "x" {
		t.Errorf("First() = %q, want x", got)
	}
}
