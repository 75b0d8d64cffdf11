package service

import "testing"

func TestOverall(t *testing.T) {
	tests := []struct {
		name           string
		ta, cc, lr, gr float64
		want           float64
	}{
		{"mixed half bands", 6.0, 6.5, 7.0, 6.5, 6.5},
		{"all equal", 7.0, 7.0, 7.0, 7.0, 7.0},
		{"quarter result kept unrounded", 6.0, 6.0, 6.0, 6.5, 6.125},
		{"minimum", 1.0, 1.0, 1.0, 1.0, 1.0},
		{"maximum", 9.0, 9.0, 9.0, 9.0, 9.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overall(tt.ta, tt.cc, tt.lr, tt.gr); got != tt.want {
				t.Errorf("Overall(%v, %v, %v, %v) = %v, want %v",
					tt.ta, tt.cc, tt.lr, tt.gr, got, tt.want)
			}
		})
	}
}
