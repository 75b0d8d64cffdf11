package scoring

import "ielts_edu_backend/internal/model"

// Official IELTS raw-score to band conversion charts. The listening chart
// sits half a band to a full band below reading through the mid range.
var readingBands = map[int]float64{
	40: 9.0, 39: 9.0, 38: 8.5, 37: 8.5, 36: 8.0, 35: 8.0,
	34: 7.5, 33: 7.5, 32: 7.0, 31: 7.0, 30: 7.0, 29: 6.5,
	28: 6.5, 27: 6.0, 26: 6.0, 25: 6.0, 24: 5.5, 23: 5.5,
	22: 5.0, 21: 5.0, 20: 5.0, 19: 4.5, 18: 4.5, 17: 4.0,
	16: 4.0, 15: 4.0, 14: 3.5, 13: 3.5, 12: 3.0, 11: 3.0,
	10: 3.0, 9: 2.5, 8: 2.5, 7: 2.0, 6: 2.0, 5: 2.0,
	4: 1.5, 3: 1.5, 2: 1.0, 1: 1.0, 0: 1.0,
}

var listeningBands = map[int]float64{
	40: 9.0, 39: 9.0, 38: 8.5, 37: 8.5, 36: 8.0, 35: 8.0,
	34: 7.5, 33: 7.5, 32: 7.0, 31: 7.0, 30: 6.5, 29: 6.5,
	28: 6.0, 27: 6.0, 26: 5.5, 25: 5.5, 24: 5.0, 23: 5.0,
	22: 4.5, 21: 4.5, 20: 4.0, 19: 4.0, 18: 3.5, 17: 3.5,
	16: 3.0, 15: 3.0, 14: 2.5, 13: 2.5, 12: 2.0, 11: 2.0,
	10: 1.5, 9: 1.5, 8: 1.0, 7: 1.0, 6: 1.0, 5: 1.0,
	4: 1.0, 3: 1.0, 2: 1.0, 1: 1.0, 0: 1.0,
}

// BandFor maps a raw correct count to a band score of the given section.
// Counts outside 0..40 fail closed to the lowest band. Writing and speaking
// never auto-score and always yield 0.
func BandFor(section model.SectionType, correct int) float64 {
	switch section {
	case model.SectionReading:
		if band, ok := readingBands[correct]; ok {
			return band
		}
		return 1.0
	case model.SectionListening:
		if band, ok := listeningBands[correct]; ok {
			return band
		}
		return 1.0
	default:
		return 0.0
	}
}
