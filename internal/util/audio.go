package util

import (
	"encoding/json"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeAudioDuration returns the duration in seconds of an audio file on
// disk. A file ffprobe cannot read reports 0; callers treat duration as
// best-effort metadata, never as a reason to reject an upload.
func ProbeAudioDuration(path string) float64 {
	jsonOutput, err := ffmpeg.Probe(path)
	if err != nil {
		return 0
	}

	var result struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return 0
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return 0
	}
	return duration
}
