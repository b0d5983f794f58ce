package acoustid

import "fmt"

// FingerprintError represents a fingerprint computation error.
type FingerprintError struct {
	Message  string
	Original error
}

func (e *FingerprintError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Fingerprint error: %s: %v", e.Message, e.Original)
	}
	return fmt.Sprintf("Fingerprint error: %s", e.Message)
}

func (e *FingerprintError) Unwrap() error {
	return e.Original
}

// LookupError represents a lookup request failure.
type LookupError struct {
	Message  string
	Original error
}

func (e *LookupError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Lookup error: %s: %v", e.Message, e.Original)
	}
	return fmt.Sprintf("Lookup error: %s", e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Original
}

// SubmitError represents a correction submission failure.
type SubmitError struct {
	Message  string
	Original error
}

func (e *SubmitError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Submit error: %s: %v", e.Message, e.Original)
	}
	return fmt.Sprintf("Submit error: %s", e.Message)
}

func (e *SubmitError) Unwrap() error {
	return e.Original
}
