package metadata

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// CoverSource produces front cover image bytes for an artist/album pair.
type CoverSource interface {
	Fetch(ctx context.Context, artist, album string) ([]byte, error)
}

// CoverFetcher sources cover images through the sacad command-line tool.
type CoverFetcher struct {
	// Binary is the sacad executable; defaults to "sacad" on PATH.
	Binary string

	// Size is the requested square image size in pixels.
	Size int

	// MaxAttempts bounds how often a fruitless search is repeated before the
	// album is declared coverless.
	MaxAttempts int

	// ExtraArgs are appended verbatim to every invocation, with protective
	// leading spaces stripped.
	ExtraArgs []string
}

// NewCoverFetcher creates a fetcher with the stock 600px size and two
// attempts.
func NewCoverFetcher(extraArgs []string) *CoverFetcher {
	return &CoverFetcher{
		Binary:      "sacad",
		Size:        600,
		MaxAttempts: 2,
		ExtraArgs:   extraArgs,
	}
}

// Fetch runs sacad and returns the downloaded image bytes. The " - Single"
// suffix synthesized for single releases is stripped from the album before
// searching, since stores index the bare title. When every attempt produces
// no file, Fetch returns a CoverNotFoundError rather than failing the batch.
func (f *CoverFetcher) Fetch(ctx context.Context, artist, album string) ([]byte, error) {
	binary := f.Binary
	if binary == "" {
		binary = "sacad"
	}
	attempts := f.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	album = strings.TrimSuffix(album, " - Single")

	target := filepath.Join(os.TempDir(), fmt.Sprintf("songprep-cover-%d.jpg", os.Getpid()))
	defer os.Remove(target)

	for attempt := 0; attempt < attempts; attempt++ {
		args := []string{
			"--verbosity", "quiet",
			artist,
			album,
			strconv.Itoa(f.Size),
			target,
		}
		for _, extra := range f.ExtraArgs {
			args = append(args, strings.TrimLeft(extra, " "))
		}

		cmd := exec.CommandContext(ctx, binary, args...)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return nil, &CoverError{
				Message:  fmt.Sprintf("sacad failed (output: %s)", strings.TrimSpace(string(output))),
				Original: err,
			}
		}

		data, err := os.ReadFile(target)
		if err == nil && len(data) > 0 {
			return data, nil
		}
		// sacad exits zero without writing a file when nothing matched;
		// retry a bounded number of times, then report not found
	}

	return nil, &CoverNotFoundError{Artist: artist, Album: album}
}
