package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sv4u/songprep/pipeline"
	"github.com/sv4u/songprep/pipeline/acoustid"
	"github.com/sv4u/songprep/pipeline/audio"
	"github.com/sv4u/songprep/pipeline/config"
	"github.com/sv4u/songprep/pipeline/logging"
	"github.com/sv4u/songprep/pipeline/metadata"
	"github.com/sv4u/songprep/pipeline/resolve"
	"github.com/sv4u/songprep/pipeline/workflow"
)

// Exit codes for the process command.
const (
	ProcessExitSuccess     = 0
	ProcessExitConfigError = 1
	ProcessExitUsage       = 2
	ProcessExitSetup       = 3
	ProcessExitPartial     = 4
)

// processCommand runs the full pipeline: download (or take files as-is),
// resolve metadata, place, tag, and normalize. Returns exit code.
func processCommand(args []string) int {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file (optional)")
	downloadDir := fs.String("download-dir", "", "Directory for raw downloads")
	outputDir := fs.String("output-dir", "", "Directory for finished songs")
	skipDir := fs.String("skip-dir", "", "Directory for shelved unconfident files")
	asFiles := fs.Bool("files", false, "Treat arguments as existing audio files instead of URLs")
	keep := fs.Bool("keep", false, "Copy instead of moving input files")
	skip := fs.Bool("skip", false, "Shelve unconfident files instead of prompting")
	manual := fs.Bool("manual", false, "Review every file manually regardless of confidence")
	workers := fs.Int("workers", 0, "Number of concurrent workers (non-interactive runs only)")
	verbose := fs.Bool("verbose", false, "Log debug detail")

	if err := fs.Parse(args); err != nil {
		return ProcessExitUsage
	}
	inputs := fs.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "No URLs or files given")
		fs.Usage()
		return ProcessExitUsage
	}

	cfg, err := loadProcessConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return ProcessExitConfigError
	}

	// Command-line overrides win over file and defaults.
	if *downloadDir != "" {
		cfg.DownloadDir = *downloadDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *skipDir != "" {
		cfg.SkipDir = *skipDir
	}
	if *keep {
		cfg.KeepOriginal = true
	}
	if *skip {
		cfg.SkipUnconfident = true
	}
	if *manual {
		cfg.ForceManual = true
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return ProcessExitConfigError
	}

	// Manual review reads from the terminal; prompts must not interleave.
	interactive := cfg.ForceManual || !cfg.SkipUnconfident
	if interactive && cfg.Workers > 1 {
		fmt.Fprintln(os.Stderr, "Manual review enabled, forcing workers to 1")
		cfg.Workers = 1
	}

	minLevel := logging.LogLevelInfo
	if *verbose {
		minLevel = logging.LogLevelDebug
	}
	logger, err := logging.NewLogger(cfg.LogPath, "songprep", minLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return ProcessExitSetup
	}
	defer logger.Close()

	minTier, err := resolve.ParseTier(cfg.Resolve.MinReleaseTier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return ProcessExitConfigError
	}
	policy := resolve.Policy{
		MinAudioScore:  cfg.Resolve.MinAudioScore,
		MinFileScore:   cfg.Resolve.MinFileScore,
		MinReleaseTier: minTier,
	}

	client, err := acoustid.NewClient(&acoustid.Config{
		AppKey:            cfg.AcoustID.AppKey,
		UserKey:           cfg.AcoustID.UserKey,
		Timeout:           time.Duration(cfg.AcoustID.TimeoutSeconds * float64(time.Second)),
		MaxRetries:        cfg.AcoustID.MaxRetries,
		RateLimitEnabled:  cfg.AcoustID.RateLimitEnabled,
		RateLimitRequests: cfg.AcoustID.RateLimitRequests,
		RateLimitWindow:   cfg.AcoustID.RateLimitWindow,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return ProcessExitConfigError
	}

	wf := workflow.New(
		acoustid.NewChromaprint(),
		client,
		workflow.PromptReviewer{},
		policy,
		workflow.Options{
			ForceManual:     cfg.ForceManual,
			SkipUnconfident: cfg.SkipUnconfident,
			SkipDir:         cfg.SkipDir,
			KeepOriginal:    cfg.KeepOriginal,
		},
		logger,
	)

	embedder := metadata.NewEmbedder(metadata.NewCoverFetcher(cfg.ExtraCoverArgs), logger)
	normalizer := audio.NewNormalizer(cfg.ExtraNormalizeArgs)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	files := inputs
	var downloader *audio.Downloader
	if !*asFiles {
		downloader, err = audio.NewDownloader(cfg.DownloadDir, cfg.ExtraYtDlpArgs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error preparing download directory: %v\n", err)
			return ProcessExitSetup
		}
		files, err = downloader.Download(ctx, inputs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Download failed: %v\n", err)
			logger.Error("Download failed", err)
			return ProcessExitSetup
		}
	}

	proc := pipeline.NewProcessor(wf, embedder, normalizer, cfg.OutputDir, cfg.KeepOriginal, cfg.Workers, logger)

	logger.Infof("songprep version %s, processing %d file(s)", Version, len(files))
	summary := proc.Run(ctx, files)

	if downloader != nil && !cfg.KeepOriginal {
		downloader.CleanupDownloadDir()
	}

	fmt.Printf("Processed %d file(s): %d accepted, %d corrected, %d skipped, %d failed\n",
		summary.Processed, summary.Accepted, summary.Corrected, summary.Skipped, summary.Failed)
	logger.Infof("Run complete: %d accepted, %d corrected, %d skipped, %d failed",
		summary.Accepted, summary.Corrected, summary.Skipped, summary.Failed)

	if summary.Failed > 0 {
		return ProcessExitPartial
	}
	return ProcessExitSuccess
}

// loadProcessConfig loads the named config file, or, when none is named,
// the default path if present, or built-in defaults.
func loadProcessConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.LoadConfig(defaultConfigPath)
	}
	return config.DefaultConfig(), nil
}
