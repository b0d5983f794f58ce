package audio

import "fmt"

// DownloadError represents an audio download error.
type DownloadError struct {
	Message  string
	Original error
}

func (e *DownloadError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Audio download error: %s: %v", e.Message, e.Original)
	}
	return fmt.Sprintf("Audio download error: %s", e.Message)
}

func (e *DownloadError) Unwrap() error {
	return e.Original
}

// NormalizeError represents a loudness normalization error.
type NormalizeError struct {
	Message  string
	Original error
}

func (e *NormalizeError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Audio normalize error: %s: %v", e.Message, e.Original)
	}
	return fmt.Sprintf("Audio normalize error: %s", e.Message)
}

func (e *NormalizeError) Unwrap() error {
	return e.Original
}
