package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"regexp"
	"strconv"
)

var volumeDetectRegex = regexp.MustCompile(`max_volume: (-?\d+\.\d+) dB`)

// FFmpegVolumeDetect returns the maximum volume delta (in dB) between
// the given audio file and the 0dB ceiling.
func FFmpegVolumeDetect(path string) (float64, error) {
	var (
		output bytes.Buffer
		cmd    = exec.Command("ffmpeg",
			"-i", path,
			"-af", "volumedetect",
			"-f", "null",
			"-y", "/dev/null",
		)
	)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return 0, errors.New(output.String())
	}

	match := volumeDetectRegex.FindStringSubmatch(output.String())
	if match == nil {
		return 0, errors.New("no volume data in ffmpeg output")
	}
	delta, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, err
	}
	return -delta, nil
}

// FFmpegVolumeAdd rewrites the given audio file raising its volume by
// the given dB delta.
func FFmpegVolumeAdd(path string, delta float64) error {
	if delta == 0 {
		return nil
	}

	var (
		output bytes.Buffer
		temp   = path + ".norm.mp3"
		cmd    = exec.Command("ffmpeg",
			"-i", path,
			"-af", "volume="+strconv.FormatFloat(delta, 'f', 1, 64)+"dB",
			"-b:a", "320k",
			"-y", temp,
		)
	)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return errors.New(output.String())
	}
	return os.Rename(temp, path)
}
