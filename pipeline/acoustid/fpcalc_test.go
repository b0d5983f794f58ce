package acoustid

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeFpcalc writes a shell script that emits the given stdout and exits 0,
// standing in for the real binary.
func fakeFpcalc(t *testing.T, stdout string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub requires a POSIX shell")
	}
	script := filepath.Join(t.TempDir(), "fpcalc")
	content := "#!/bin/sh\ncat <<'EOF'\n" + stdout + "\nEOF\n"
	if err := os.WriteFile(script, []byte(content), 0755); err != nil {
		t.Fatalf("Failed to write stub: %v", err)
	}
	return script
}

func TestFingerprint(t *testing.T) {
	chromaprint := &Chromaprint{
		Binary: fakeFpcalc(t, `{"duration": 320.77, "fingerprint": "AQAA_test"}`),
	}

	fp, err := chromaprint.Fingerprint(context.Background(), "song.mp3")
	if err != nil {
		t.Fatalf("Fingerprint() failed: %v", err)
	}
	if fp.Duration != 320.77 {
		t.Errorf("Expected duration 320.77, got %f", fp.Duration)
	}
	if fp.Fingerprint != "AQAA_test" {
		t.Errorf("Expected fingerprint 'AQAA_test', got %q", fp.Fingerprint)
	}
}

func TestFingerprint_MissingBinary(t *testing.T) {
	chromaprint := &Chromaprint{Binary: filepath.Join(t.TempDir(), "no-such-fpcalc")}

	_, err := chromaprint.Fingerprint(context.Background(), "song.mp3")
	if err == nil {
		t.Fatal("Fingerprint() should fail when the binary is missing")
	}
	var fpErr *FingerprintError
	if !errors.As(err, &fpErr) {
		t.Errorf("Expected FingerprintError, got %T", err)
	}
}

func TestFingerprint_BadOutput(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
	}{
		{"not json", "ERROR: unable to open file"},
		{"empty fingerprint", `{"duration": 100.0, "fingerprint": ""}`},
		{"zero duration", `{"duration": 0, "fingerprint": "AQAA"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chromaprint := &Chromaprint{Binary: fakeFpcalc(t, tt.stdout)}
			_, err := chromaprint.Fingerprint(context.Background(), "song.mp3")
			if err == nil {
				t.Fatal("Fingerprint() should fail")
			}
			var fpErr *FingerprintError
			if !errors.As(err, &fpErr) {
				t.Errorf("Expected FingerprintError, got %T", err)
			}
		})
	}
}
