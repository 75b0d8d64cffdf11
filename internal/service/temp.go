package service

import (
	"io"
	"os"
)

// writeTemp spools an upload to a temp file so it can be probed with ffmpeg
// before being pushed to the storage provider. Returns the temp file path.
func writeTemp(pattern string, src io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func removeTemp(path string) {
	os.Remove(path)
}
