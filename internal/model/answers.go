package model

import "encoding/json"

// AnswerValue preserves every value a multi-valued form field carried.
type AnswerValue []string

// First returns the leading value, or "" when nothing was submitted.
func (v AnswerValue) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// AnswerSet is the typed decoding of one submission, keyed by section shape:
// objective answers by subquestion id, writing answers by task id, speaking
// transcript notes by part id. It is decoded once at the submission boundary
// and stored as JSON on the attempt.
type AnswerSet struct {
	Objective map[uint]AnswerValue `json:"objective,omitempty"`
	Writing   map[uint]string      `json:"writing,omitempty"`
	Speaking  map[uint]string      `json:"speaking,omitempty"`
}

func (s AnswerSet) IsEmpty() bool {
	return len(s.Objective) == 0 && len(s.Writing) == 0 && len(s.Speaking) == 0
}

func (s AnswerSet) Encode() string {
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// DecodeAnswerSet parses a stored answer payload. A blank or undecodable
// payload yields an empty set rather than an error: historical rows predate
// the current encoding and must still render.
func DecodeAnswerSet(raw string) AnswerSet {
	var s AnswerSet
	if raw == "" {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return AnswerSet{}
	}
	return s
}
