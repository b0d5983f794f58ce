package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sv4u/songprep/pipeline/acoustid"
	"github.com/sv4u/songprep/pipeline/resolve"
	"github.com/sv4u/songprep/pipeline/workflow"
)

// Exit codes for the identify command.
const (
	IdentifyExitSuccess     = 0
	IdentifyExitConfigError = 1
	IdentifyExitUsage       = 2
	IdentifyExitFailed      = 3
)

// identifyCommand fingerprints files and prints the best match for each
// without modifying anything. Returns exit code.
func identifyCommand(args []string) int {
	fs := flag.NewFlagSet("identify", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file (optional)")

	if err := fs.Parse(args); err != nil {
		return IdentifyExitUsage
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files given")
		fs.Usage()
		return IdentifyExitUsage
	}

	cfg, err := loadProcessConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return IdentifyExitConfigError
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return IdentifyExitConfigError
	}

	minTier, err := resolve.ParseTier(cfg.Resolve.MinReleaseTier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return IdentifyExitConfigError
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
		return IdentifyExitConfigError
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	chromaprint := acoustid.NewChromaprint()
	failed := 0
	for _, file := range files {
		if err := identifyFile(ctx, chromaprint, client, policy, file); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed++
		}
	}
	if failed > 0 {
		return IdentifyExitFailed
	}
	return IdentifyExitSuccess
}

func identifyFile(ctx context.Context, chromaprint *acoustid.Chromaprint, client *acoustid.Client, policy resolve.Policy, file string) error {
	fp, err := chromaprint.Fingerprint(ctx, file)
	if err != nil {
		return err
	}
	resp, err := client.Lookup(ctx, fp)
	if err != nil {
		return err
	}

	candidates := resolve.ExtractCandidates(resp)
	match := resolve.SelectBestMatch(candidates, workflow.BaseName(file))

	fmt.Printf("%s\n", file)
	fmt.Printf("  duration:   %.1fs, %d candidate(s)\n", fp.Duration, len(candidates))
	if match.Song.Title == "" && match.Song.Artist == "" {
		fmt.Printf("  no match\n")
		return nil
	}
	fmt.Printf("  artist:     %s\n", match.Song.Artist)
	fmt.Printf("  title:      %s\n", match.Song.Title)
	fmt.Printf("  album:      %s\n", match.Song.Album)
	fmt.Printf("  scores:     audio %.2f, filename %d, release %s\n",
		match.Score.Audio, match.Score.File, match.Score.Release)
	fmt.Printf("  confident:  %t\n", policy.Confident(match))
	return nil
}
