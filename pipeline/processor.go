// Package pipeline wires metadata resolution into the per-file tagging
// pipeline: resolve, place, tag, normalize.
package pipeline

import (
	"context"
	"sync"

	"github.com/sv4u/songprep/pipeline/logging"
	"github.com/sv4u/songprep/pipeline/metadata"
	"github.com/sv4u/songprep/pipeline/workflow"
)

// FileResolver drives one file to a terminal resolution state.
type FileResolver interface {
	ResolveFile(ctx context.Context, path string) (*workflow.Outcome, error)
}

// TagWriter writes resolved metadata into a placed file.
type TagWriter interface {
	Embed(ctx context.Context, filePath string, song *metadata.Song) error
}

// LoudnessNormalizer rewrites a file at a uniform loudness.
type LoudnessNormalizer interface {
	Normalize(ctx context.Context, path string) error
}

// Processor runs the per-file pipeline over a batch. Files are independent,
// so the batch parallelizes behind a worker bound; a failing file is logged
// and counted, never aborts the rest.
type Processor struct {
	resolver   FileResolver
	embedder   TagWriter
	normalizer LoudnessNormalizer
	logger     *logging.Logger

	outputDir    string
	keepOriginal bool
	workers      int
}

// NewProcessor creates a batch processor.
func NewProcessor(resolver FileResolver, embedder TagWriter, normalizer LoudnessNormalizer, outputDir string, keepOriginal bool, workers int, logger *logging.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		resolver:     resolver,
		embedder:     embedder,
		normalizer:   normalizer,
		logger:       logger,
		outputDir:    outputDir,
		keepOriginal: keepOriginal,
		workers:      workers,
	}
}

// RunSummary aggregates batch results.
type RunSummary struct {
	Processed int
	Accepted  int
	Corrected int
	Skipped   int
	Failed    int
}

// Run processes every file and returns the batch summary.
func (p *Processor) Run(ctx context.Context, files []string) RunSummary {
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var summary RunSummary

	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(file string) {
			defer wg.Done()
			defer func() { <-sem }()

			state, err := p.processFile(ctx, file)

			mu.Lock()
			defer mu.Unlock()
			summary.Processed++
			switch {
			case err != nil:
				p.logger.ErrorFile(file, "Processing failed", err)
				summary.Failed++
			case state == workflow.StateAutoAccepted:
				summary.Accepted++
			case state == workflow.StateManuallyCorrected:
				summary.Corrected++
			case state == workflow.StateSkipped:
				summary.Skipped++
			}
		}(file)
	}

	wg.Wait()
	return summary
}

func (p *Processor) processFile(ctx context.Context, file string) (workflow.State, error) {
	p.logger.InfoFile(file, "Start processing")

	outcome, err := p.resolver.ResolveFile(ctx, file)
	if err != nil {
		return "", err
	}
	if outcome.State == workflow.StateSkipped {
		return outcome.State, nil
	}

	placed, err := workflow.PlaceAsSong(outcome.File, outcome.Song, p.outputDir, p.keepOriginal, p.logger)
	if err != nil {
		return outcome.State, err
	}

	song := &metadata.Song{
		Artist: outcome.Song.Artist,
		Title:  outcome.Song.Title,
		Album:  outcome.Song.Album,
	}
	if err := p.embedder.Embed(ctx, placed, song); err != nil {
		return outcome.State, err
	}
	if err := p.normalizer.Normalize(ctx, placed); err != nil {
		return outcome.State, err
	}

	p.logger.InfoFile(placed, "Finished processing")
	return outcome.State, nil
}
