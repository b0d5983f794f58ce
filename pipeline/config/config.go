package config

import (
	"fmt"
	"strings"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// AcoustIDSettings holds lookup service credentials and client tuning.
type AcoustIDSettings struct {
	// API keys. The application key authenticates lookups; the user key is
	// needed only for correction submissions. Both fall back to the
	// environment (see ApplyEnv).
	AppKey  string `yaml:"app_key"`
	UserKey string `yaml:"user_key"`

	TimeoutSeconds    float64 `yaml:"timeout_seconds"`
	MaxRetries        int     `yaml:"max_retries"`
	RateLimitEnabled  bool    `yaml:"rate_limit_enabled"`
	RateLimitRequests int     `yaml:"rate_limit_requests"`
	RateLimitWindow   float64 `yaml:"rate_limit_window"`
}

// ResolveSettings holds the confidence thresholds and tier policy of the
// metadata resolution engine.
type ResolveSettings struct {
	MinAudioScore  float64 `yaml:"min_audio_score"`
	MinFileScore   int     `yaml:"min_file_score"`
	MinReleaseTier string  `yaml:"min_release_tier"`
}

// Config is the main configuration model.
type Config struct {
	Version  string           `yaml:"version"`
	AcoustID AcoustIDSettings `yaml:"acoustid"`
	Resolve  ResolveSettings  `yaml:"resolve"`

	DownloadDir string `yaml:"download_dir"`
	OutputDir   string `yaml:"output_dir"`
	SkipDir     string `yaml:"skip_dir"`
	LogPath     string `yaml:"log_path"`

	Workers         int  `yaml:"workers"`
	KeepOriginal    bool `yaml:"keep_original"`
	SkipUnconfident bool `yaml:"skip_unconfident"`
	ForceManual     bool `yaml:"force_manual"`

	// Passthrough arguments for the external collaborators. Arguments
	// starting with dashes may be prefixed with a protective space.
	ExtraYtDlpArgs     []string `yaml:"extra_ytdlp_args"`
	ExtraNormalizeArgs []string `yaml:"extra_normalize_args"`
	ExtraCoverArgs     []string `yaml:"extra_cover_args"`
}

// validTiers lists the release tier names accepted for min_release_tier.
var validTiers = map[string]bool{
	"none":        true,
	"mix":         true,
	"compilation": true,
	"single":      true,
	"album":       true,
}

// SetDefaults sets default values for Config.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.DownloadDir == "" {
		c.DownloadDir = "downloaded"
	}
	if c.OutputDir == "" {
		c.OutputDir = "finished"
	}
	if c.SkipDir == "" {
		c.SkipDir = "skipped"
	}
	if c.LogPath == "" {
		c.LogPath = "songprep.log"
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.AcoustID.TimeoutSeconds == 0 {
		c.AcoustID.TimeoutSeconds = 10
	}
	if c.AcoustID.MaxRetries == 0 {
		c.AcoustID.MaxRetries = 3
	}
	if !c.AcoustID.RateLimitEnabled && c.AcoustID.RateLimitRequests == 0 {
		c.AcoustID.RateLimitEnabled = true
	}
	if c.AcoustID.RateLimitRequests == 0 {
		c.AcoustID.RateLimitRequests = 3
	}
	if c.AcoustID.RateLimitWindow == 0 {
		c.AcoustID.RateLimitWindow = 1.0
	}
	if c.Resolve.MinAudioScore == 0 {
		c.Resolve.MinAudioScore = 0.40
	}
	if c.Resolve.MinFileScore == 0 {
		c.Resolve.MinFileScore = 70
	}
	if c.Resolve.MinReleaseTier == "" {
		c.Resolve.MinReleaseTier = "single"
	}
}

// Validate validates Config.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return &ConfigError{
			Message: fmt.Sprintf("Invalid version: %s. Expected 1.0", c.Version),
		}
	}

	c.AcoustID.AppKey = strings.TrimSpace(c.AcoustID.AppKey)
	c.AcoustID.UserKey = strings.TrimSpace(c.AcoustID.UserKey)
	if c.AcoustID.AppKey == "" {
		return &ConfigError{
			Message: "Missing AcoustID application API key. Provide acoustid.app_key in the configuration file or set ACOUSTID_APPLICATION_API_KEY",
		}
	}

	if c.Workers < 1 || c.Workers > 16 {
		return &ConfigError{
			Message: fmt.Sprintf("Invalid workers: %d. Must be between 1 and 16", c.Workers),
		}
	}

	if c.Resolve.MinAudioScore <= 0 || c.Resolve.MinAudioScore > 1 {
		return &ConfigError{
			Message: fmt.Sprintf("Invalid min_audio_score: %g. Must be in (0,1]", c.Resolve.MinAudioScore),
		}
	}
	if c.Resolve.MinFileScore < 1 || c.Resolve.MinFileScore > 100 {
		return &ConfigError{
			Message: fmt.Sprintf("Invalid min_file_score: %d. Must be between 1 and 100", c.Resolve.MinFileScore),
		}
	}
	if !validTiers[strings.ToLower(c.Resolve.MinReleaseTier)] {
		return &ConfigError{
			Message: fmt.Sprintf("Invalid min_release_tier: %s. Must be one of: none, mix, compilation, single, album", c.Resolve.MinReleaseTier),
		}
	}

	return nil
}
