package metadata

import "fmt"

// MetadataError represents a tag writing error.
type MetadataError struct {
	Message  string
	Original error
}

func (e *MetadataError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Metadata error: %s: %v", e.Message, e.Original)
	}
	return fmt.Sprintf("Metadata error: %s", e.Message)
}

func (e *MetadataError) Unwrap() error {
	return e.Original
}

// CoverError represents a cover art retrieval failure.
type CoverError struct {
	Message  string
	Original error
}

func (e *CoverError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Cover error: %s: %v", e.Message, e.Original)
	}
	return fmt.Sprintf("Cover error: %s", e.Message)
}

func (e *CoverError) Unwrap() error {
	return e.Original
}

// CoverNotFoundError reports that no cover image could be sourced for an
// artist/album pair after the configured number of attempts. It is an
// expected outcome, not a failure of the tagging step.
type CoverNotFoundError struct {
	Artist string
	Album  string
}

func (e *CoverNotFoundError) Error() string {
	return fmt.Sprintf("No cover art found for %s - %s", e.Artist, e.Album)
}
