package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readEntries(t *testing.T, path string) []LogEntry {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Log line is not valid JSON: %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, err := NewLogger(logPath, "songprep", LogLevelDebug)
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}

	logger.Debug("debug message")
	logger.Infof("processing %d files", 3)
	logger.InfoFile("song.mp3", "resolved")
	logger.ErrorFile("bad.mp3", "lookup failed", errors.New("network down"))

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	entries := readEntries(t, logPath)
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	if entries[0].Level != LogLevelDebug || entries[0].Message != "debug message" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].Message != "processing 3 files" {
		t.Errorf("Expected formatted message, got %q", entries[1].Message)
	}
	if entries[2].File != "song.mp3" {
		t.Errorf("Expected file field 'song.mp3', got %q", entries[2].File)
	}
	if entries[3].Level != LogLevelError || entries[3].Error != "network down" {
		t.Errorf("Unexpected error entry: %+v", entries[3])
	}
	for _, entry := range entries {
		if entry.Service != "songprep" {
			t.Errorf("Expected service 'songprep', got %q", entry.Service)
		}
		if entry.Timestamp.IsZero() {
			t.Error("Expected a timestamp on every entry")
		}
	}
}

func TestLogger_MinLevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	logger, err := NewLogger(logPath, "songprep", LogLevelWarn)
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("kept too", nil)

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	entries := readEntries(t, logPath)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != LogLevelWarn || entries[1].Level != LogLevelError {
		t.Errorf("Unexpected levels: %+v", entries)
	}
}

func TestLogger_AppendsAcrossSessions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	for _, message := range []string{"first run", "second run"} {
		logger, err := NewLogger(logPath, "songprep", LogLevelInfo)
		if err != nil {
			t.Fatalf("NewLogger() failed: %v", err)
		}
		logger.Info(message)
		logger.Close()
	}

	entries := readEntries(t, logPath)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries across sessions, got %d", len(entries))
	}
}
