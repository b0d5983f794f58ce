package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDestinations(t *testing.T) {
	output := `[youtube] dQw4w9WgXcQ: Downloading webpage
[download] Destination: downloaded/Never Gonna Give You Up.webm
[download] 100% of 3.28MiB in 00:00
[ExtractAudio] Destination: downloaded/Never Gonna Give You Up.mp3
Deleting original file downloaded/Never Gonna Give You Up.webm
[download] Destination: downloaded/Second Song.mp3
`

	files := parseDestinations(output)
	if len(files) != 2 {
		t.Fatalf("Expected 2 MP3 destinations, got %d: %v", len(files), files)
	}
	if files[0] != "downloaded/Never Gonna Give You Up.mp3" {
		t.Errorf("Unexpected first destination: %q", files[0])
	}
	if files[1] != "downloaded/Second Song.mp3" {
		t.Errorf("Unexpected second destination: %q", files[1])
	}
}

func TestParseDestinations_Empty(t *testing.T) {
	if files := parseDestinations("no destinations here\n"); len(files) != 0 {
		t.Errorf("Expected no destinations, got %v", files)
	}
}

func TestNewDownloader_CreatesDirectory(t *testing.T) {
	downloadDir := filepath.Join(t.TempDir(), "downloads")

	downloader, err := NewDownloader(downloadDir, nil)
	if err != nil {
		t.Fatalf("NewDownloader() failed: %v", err)
	}
	if downloader.DownloadDir != downloadDir {
		t.Errorf("Unexpected download dir %q", downloader.DownloadDir)
	}
	if info, err := os.Stat(downloadDir); err != nil || !info.IsDir() {
		t.Errorf("Expected download directory to exist: %v", err)
	}
}

func TestCleanupDownloadDir(t *testing.T) {
	downloadDir := filepath.Join(t.TempDir(), "downloads")
	downloader, err := NewDownloader(downloadDir, nil)
	if err != nil {
		t.Fatalf("NewDownloader() failed: %v", err)
	}

	// Non-empty directories are left alone
	leftover := filepath.Join(downloadDir, "still-here.mp3")
	if err := os.WriteFile(leftover, []byte("audio"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	downloader.CleanupDownloadDir()
	if _, err := os.Stat(leftover); err != nil {
		t.Errorf("Expected non-empty directory to survive cleanup: %v", err)
	}

	// Empty directories are removed
	if err := os.Remove(leftover); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}
	downloader.CleanupDownloadDir()
	if _, err := os.Stat(downloadDir); !os.IsNotExist(err) {
		t.Error("Expected empty directory to be removed")
	}
}
