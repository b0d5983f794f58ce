package acoustid

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Chromaprint computes acoustic fingerprints by invoking the fpcalc binary
// from chromaprint-tools.
type Chromaprint struct {
	// Binary is the fpcalc executable; defaults to finding "fpcalc" on PATH.
	Binary string
}

// NewChromaprint creates a fingerprinter using fpcalc from PATH.
func NewChromaprint() *Chromaprint {
	return &Chromaprint{Binary: "fpcalc"}
}

// Fingerprint runs fpcalc in JSON mode against the given audio file and
// parses the duration and compressed fingerprint out of its output.
func (c *Chromaprint) Fingerprint(ctx context.Context, path string) (*Fingerprint, error) {
	binary := c.Binary
	if binary == "" {
		binary = "fpcalc"
	}

	cmd := exec.CommandContext(ctx, binary, "-json", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &FingerprintError{
			Message:  fmt.Sprintf("fpcalc failed for %s (output: %s)", path, strings.TrimSpace(string(output))),
			Original: err,
		}
	}

	var fp Fingerprint
	if err := json.Unmarshal(output, &fp); err != nil {
		return nil, &FingerprintError{
			Message:  "Failed to parse fpcalc output",
			Original: err,
		}
	}

	if strings.TrimSpace(fp.Fingerprint) == "" {
		return nil, &FingerprintError{
			Message: fmt.Sprintf("fpcalc produced no fingerprint for %s", path),
		}
	}
	if fp.Duration <= 0 {
		return nil, &FingerprintError{
			Message: fmt.Sprintf("fpcalc reported a non-positive duration for %s", path),
		}
	}

	return &fp, nil
}
