package scoring

import (
	"testing"

	"ielts_edu_backend/internal/model"
)

func TestBandForReading(t *testing.T) {
	tests := []struct {
		correct int
		want    float64
	}{
		{40, 9.0}, {39, 9.0}, {38, 8.5}, {35, 8.0},
		{30, 7.0}, {27, 6.0}, {23, 5.5}, {20, 5.0},
		{15, 4.0}, {10, 3.0}, {5, 2.0}, {1, 1.0}, {0, 1.0},
	}
	for _, tt := range tests {
		if got := BandFor(model.SectionReading, tt.correct); got != tt.want {
			t.Errorf("BandFor(reading, %d) = %v, want %v", tt.correct, got, tt.want)
		}
	}
}

func TestBandForListening(t *testing.T) {
	tests := []struct {
		correct int
		want    float64
	}{
		{40, 9.0}, {38, 8.5}, {35, 8.0}, {32, 7.0},
		{30, 6.5}, {27, 6.0}, {25, 5.5}, {23, 5.0},
		{20, 4.0}, {16, 3.0}, {10, 1.5}, {8, 1.0}, {0, 1.0},
	}
	for _, tt := range tests {
		if got := BandFor(model.SectionListening, tt.correct); got != tt.want {
			t.Errorf("BandFor(listening, %d) = %v, want %v", tt.correct, got, tt.want)
		}
	}
}

func TestBandChartsDivergeMidRange(t *testing.T) {
	// The listening chart is stricter than reading through the middle.
	for _, correct := range []int{30, 26, 22, 18, 14, 10} {
		reading := BandFor(model.SectionReading, correct)
		listening := BandFor(model.SectionListening, correct)
		if listening >= reading {
			t.Errorf("at %d correct: listening band %v should be below reading band %v",
				correct, listening, reading)
		}
	}
}

func TestBandForWholeRange(t *testing.T) {
	// Every count 0..40 maps to a band in 1.0..9.0 on a half-band step,
	// and bands never decrease as the raw score grows.
	for _, section := range []model.SectionType{model.SectionReading, model.SectionListening} {
		prev := 0.0
		for correct := 0; correct <= 40; correct++ {
			band := BandFor(section, correct)
			if band < 1.0 || band > 9.0 {
				t.Fatalf("BandFor(%s, %d) = %v out of range", section, correct, band)
			}
			if halves := band * 2; halves != float64(int(halves)) {
				t.Fatalf("BandFor(%s, %d) = %v not a half-band step", section, correct, band)
			}
			if band < prev {
				t.Fatalf("BandFor(%s, %d) = %v below previous %v", section, correct, band, prev)
			}
			prev = band
		}
	}
}

func TestBandForOutOfRange(t *testing.T) {
	if got := BandFor(model.SectionReading, 41); got != 1.0 {
		t.Errorf("BandFor(reading, 41) = %v, want 1.0", got)
	}
	if got := BandFor(model.SectionListening, -1); got != 1.0 {
		t.Errorf("BandFor(listening, -1) = %v, want 1.0", got)
	}
}

func TestBandForSubjectiveSections(t *testing.T) {
	if got := BandFor(model.SectionWriting, 40); got != 0.0 {
		t.Errorf("BandFor(writing, 40) = %v, want 0", got)
	}
	if got := BandFor(model.SectionSpeaking, 40); got != 0.0 {
		t.Errorf("BandFor(speaking, 40) = %v, want 0", got)
	}
}
