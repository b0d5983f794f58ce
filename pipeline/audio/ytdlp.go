package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Downloader fetches video URLs as MP3 files using yt-dlp.
type Downloader struct {
	// DownloadDir is where extracted MP3 files land.
	DownloadDir string

	// ExtraArgs are appended verbatim to every yt-dlp invocation. Arguments
	// starting with dashes may carry a protective leading space, which is
	// stripped here.
	ExtraArgs []string
}

// NewDownloader creates a downloader writing into downloadDir.
func NewDownloader(downloadDir string, extraArgs []string) (*Downloader, error) {
	if err := os.MkdirAll(downloadDir, 0755); err != nil {
		return nil, &DownloadError{
			Message:  fmt.Sprintf("Failed to create download directory: %s", downloadDir),
			Original: err,
		}
	}
	return &Downloader{DownloadDir: downloadDir, ExtraArgs: extraArgs}, nil
}

// Download extracts best-quality MP3 audio for every URL in one yt-dlp run
// and returns the paths of the written files, parsed from yt-dlp's
// destination reporting. Output filenames follow the video title.
func (d *Downloader) Download(ctx context.Context, urls []string) ([]string, error) {
	args := []string{
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "0",
	}
	args = append(args, urls...)
	args = append(args, "--output", filepath.Join(d.DownloadDir, "%(title)s.%(ext)s"))
	for _, extra := range d.ExtraArgs {
		args = append(args, strings.TrimLeft(extra, " "))
	}

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &DownloadError{
			Message:  fmt.Sprintf("yt-dlp failed (output: %s)", strings.TrimSpace(string(output))),
			Original: err,
		}
	}

	files := parseDestinations(string(output))
	if len(files) == 0 {
		return nil, &DownloadError{
			Message: "yt-dlp reported no written MP3 files",
		}
	}
	return files, nil
}

// parseDestinations extracts written MP3 paths from yt-dlp's combined output.
// Both the downloader and the audio extractor report lines of the form
// "[...] Destination: <path>".
func parseDestinations(output string) []string {
	var files []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "Destination") || !strings.HasSuffix(line, ".mp3") {
			continue
		}
		parts := strings.SplitN(line, " ", 3)
		files = append(files, parts[len(parts)-1])
	}
	return files
}

// CleanupDownloadDir removes the download directory when it is empty. Both a
// missing and a non-empty directory are fine to leave alone.
func (d *Downloader) CleanupDownloadDir() {
	_ = os.Remove(d.DownloadDir)
}
