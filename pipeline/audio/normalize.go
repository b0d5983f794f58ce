package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Normalizer performs in-place loudness normalization via ffmpeg-normalize.
type Normalizer struct {
	// ExtraArgs are appended verbatim to every invocation, with protective
	// leading spaces stripped.
	ExtraArgs []string
}

// NewNormalizer creates a normalizer.
func NewNormalizer(extraArgs []string) *Normalizer {
	return &Normalizer{ExtraArgs: extraArgs}
}

// Normalize rewrites the MP3 file in place at the highest LAME bitrate.
func (n *Normalizer) Normalize(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg-normalize", n.buildArgs(path)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &NormalizeError{
			Message:  fmt.Sprintf("ffmpeg-normalize failed for %s (output: %s)", path, strings.TrimSpace(string(output))),
			Original: err,
		}
	}
	return nil
}

func (n *Normalizer) buildArgs(path string) []string {
	args := []string{
		"--quiet",
		path,
		// Read and write MP3
		"--audio-codec", "libmp3lame",
		"--audio-bitrate", "320k",
		// In-place normalization
		"--output", path,
		"--force",
	}
	for _, extra := range n.ExtraArgs {
		args = append(args, strings.TrimLeft(extra, " "))
	}
	return args
}
