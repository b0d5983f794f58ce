package workflow

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sv4u/songprep/pipeline/acoustid"
	"github.com/sv4u/songprep/pipeline/logging"
	"github.com/sv4u/songprep/pipeline/resolve"
)

// State identifies a stage of one file's resolution. AutoAccepted, Skipped
// and ManuallyCorrected are terminal.
type State string

const (
	StateLookedUp          State = "looked_up"
	StateAutoAccepted      State = "auto_accepted"
	StateNeedsReview       State = "needs_review"
	StateSkipped           State = "skipped"
	StateManuallyCorrected State = "manually_corrected"
)

// Fingerprinter computes the acoustic fingerprint of a local audio file.
type Fingerprinter interface {
	Fingerprint(ctx context.Context, path string) (*acoustid.Fingerprint, error)
}

// LookupService is the fingerprint matching API consumed by the workflow.
type LookupService interface {
	Lookup(ctx context.Context, fp *acoustid.Fingerprint) (*acoustid.LookupResponse, error)
	Submit(ctx context.Context, sub *acoustid.Submission) error
}

// Reviewer collects manual corrections for an unconfident match.
type Reviewer interface {
	Review(ctx context.Context, file string, song resolve.Song) (ReviewResult, error)
}

// ReviewResult is the outcome of one manual review. Blank overrides keep the
// match's values; SubmitCorrection requests a crowd-sourced correction push.
type ReviewResult struct {
	Song             resolve.Song
	Adjusted         bool
	SubmitCorrection bool
}

// Options carries the per-run policy switches.
type Options struct {
	// ForceManual routes every file through review regardless of confidence.
	ForceManual bool

	// SkipUnconfident shelves unconfident files into SkipDir untouched
	// instead of prompting.
	SkipUnconfident bool
	SkipDir         string

	// KeepOriginal copies instead of moving when shelving.
	KeepOriginal bool
}

// Outcome is the terminal result for one file.
type Outcome struct {
	State State
	Song  resolve.Song
	Match resolve.Match

	// File is the input's current path; shelving updates it.
	File string
}

// Workflow resolves one file's metadata and routes the outcome: confident
// matches are accepted automatically, everything else goes through the
// skip or manual-correction path.
type Workflow struct {
	fingerprinter Fingerprinter
	lookup        LookupService
	reviewer      Reviewer
	policy        resolve.Policy
	options       Options
	logger        *logging.Logger
}

// New creates a resolution workflow.
func New(fingerprinter Fingerprinter, lookup LookupService, reviewer Reviewer, policy resolve.Policy, options Options, logger *logging.Logger) *Workflow {
	return &Workflow{
		fingerprinter: fingerprinter,
		lookup:        lookup,
		reviewer:      reviewer,
		policy:        policy,
		options:       options,
		logger:        logger,
	}
}

// ResolveFile identifies one audio file and drives it to a terminal state.
// Lookup and fingerprint failures are fatal for this file only; the caller
// logs and continues the batch.
func (w *Workflow) ResolveFile(ctx context.Context, path string) (*Outcome, error) {
	fp, err := w.fingerprinter.Fingerprint(ctx, path)
	if err != nil {
		return nil, err
	}

	resp, err := w.lookup.Lookup(ctx, fp)
	if err != nil {
		return nil, err
	}

	candidates := resolve.ExtractCandidates(resp)
	match := resolve.SelectBestMatch(candidates, BaseName(path))
	confident := w.policy.Confident(match)

	w.logger.InfoFile(path, fmt.Sprintf(
		"Resolved %q / %q / %q (audio=%.2f file=%d release=%s confident=%t)",
		match.Song.Artist, match.Song.Title, match.Song.Album,
		match.Score.Audio, match.Score.File, match.Score.Release, confident))

	if confident && !w.options.ForceManual {
		return &Outcome{State: StateAutoAccepted, Song: match.Song, Match: match, File: path}, nil
	}

	if w.options.SkipUnconfident {
		shelved, err := Shelve(path, w.options.SkipDir, w.options.KeepOriginal, w.logger)
		if err != nil {
			return nil, err
		}
		w.logger.InfoFile(path, fmt.Sprintf("Unconfident match shelved to %s", shelved))
		return &Outcome{State: StateSkipped, Song: match.Song, Match: match, File: shelved}, nil
	}

	result, err := w.reviewer.Review(ctx, path, match.Song)
	if err != nil {
		return nil, err
	}

	if result.SubmitCorrection {
		w.submitCorrection(ctx, path, fp, result.Song)
	}

	return &Outcome{State: StateManuallyCorrected, Song: result.Song, Match: match, File: path}, nil
}

// submitCorrection pushes the corrected tags back to the lookup service.
// This is fire-and-forget: failures are logged and never affect the outcome.
func (w *Workflow) submitCorrection(ctx context.Context, path string, fp *acoustid.Fingerprint, song resolve.Song) {
	sub := &acoustid.Submission{
		Duration:    fp.Duration,
		Fingerprint: fp.Fingerprint,
		Artist:      song.Artist,
		Track:       song.Title,
		Album:       song.Album,
		AlbumArtist: song.Artist,
		FileFormat:  "MP3",
	}
	if err := w.lookup.Submit(ctx, sub); err != nil {
		w.logger.WarnFile(path, "Correction submission failed", err)
		return
	}
	w.logger.InfoFile(path, "Submitted corrected tags to the lookup service")
}

// BaseName strips the directory and extension from an audio file path,
// yielding the string candidates are scored against.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
