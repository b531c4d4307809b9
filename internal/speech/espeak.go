package speech

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
)

// espeak defaults: 175 words per minute, pitch 50 of 0..99, amplitude 100 of 0..200
const (
	espeakBaseWPM       = 175
	espeakBasePitch     = 50
	espeakMaxPitch      = 99
	espeakBaseAmplitude = 100
	espeakMaxAmplitude  = 200
)

// ExecEngine synthesizes speech with an espeak binary, producing WAV
type ExecEngine struct {
	binary string
}

// NewEngine returns an engine backed by espeak-ng or espeak,
// or nil when neither is installed
func NewEngine() Engine {
	for _, name := range []string{"espeak-ng", "espeak"} {
		if path, err := exec.LookPath(name); err == nil {
			return &ExecEngine{binary: path}
		}
	}
	return nil
}

// Args returns the espeak command line for u
func (e *ExecEngine) Args(u Utterance) []string {
	wpm := int(math.Round(espeakBaseWPM * u.Rate))
	pitch := clamp(int(math.Round(espeakBasePitch*u.Pitch)), 0, espeakMaxPitch)
	amplitude := clamp(int(math.Round(espeakBaseAmplitude*u.Volume)), 0, espeakMaxAmplitude)

	return []string{
		"--stdout",
		"-s", strconv.Itoa(wpm),
		"-p", strconv.Itoa(pitch),
		"-a", strconv.Itoa(amplitude),
		"--", u.Text,
	}
}

// Synthesize runs espeak and returns the WAV it writes
func (e *ExecEngine) Synthesize(ctx context.Context, u Utterance) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, e.Args(u)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", e.binary, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
