package scoring

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"nil input", nil, ""},
		{"empty list", []string{}, ""},
		{"blank value", []string{"   "}, ""},
		{"single letter", []string{"A"}, "a"},
		{"letter with punctuation", []string{"A."}, "a"},
		{"letter with text", []string{"B) the correct option"}, "b"},
		{"lowercase passthrough", []string{"c"}, "c"},
		{"padded letter", []string{"  D  "}, "d"},
		{"numeric answer keeps full text", []string{"42"}, "42"},
		{"numeric with unit", []string{"15 minutes"}, "15 minutes"},
		{"symbol-led answer", []string{"$300"}, "$300"},
		{"mixed case phrase collapses to first letter", []string{"True"}, "t"},
		{"only first of many values", []string{"A", "B", "C"}, "a"},
		{"first value blank", []string{"", "B"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.values); got != tt.want {
				t.Errorf("Normalize(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestNormalizeOne(t *testing.T) {
	if got := NormalizeOne("A."); got != "a" {
		t.Errorf("NormalizeOne(\"A.\") = %q, want \"a\"", got)
	}
	if got := NormalizeOne("7.5"); got != "7.5" {
		t.Errorf("NormalizeOne(\"7.5\") = %q, want \"7.5\"", got)
	}
}

func TestNormalizeSymmetry(t *testing.T) {
	// Both sides of a comparison go through the same canonical form.
	pairs := [][2]string{
		{"A", "a) something"},
		{"  B.", "B"},
		{"True", "t"},
	}
	for _, pair := range pairs {
		if NormalizeOne(pair[0]) != NormalizeOne(pair[1]) {
			t.Errorf("expected %q and %q to normalize equal, got %q vs %q",
				pair[0], pair[1], NormalizeOne(pair[0]), NormalizeOne(pair[1]))
		}
	}
}
