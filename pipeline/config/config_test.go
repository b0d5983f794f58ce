package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configYAML := `version: "1.0"
acoustid:
  app_key: "test_app_key"
  user_key: "test_user_key"
resolve:
  min_audio_score: 0.5
  min_file_score: 80
  min_release_tier: "album"
output_dir: "out"
workers: 4
skip_unconfident: true
`

	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.AcoustID.AppKey != "test_app_key" {
		t.Errorf("Expected app_key 'test_app_key', got %q", config.AcoustID.AppKey)
	}
	if config.Resolve.MinAudioScore != 0.5 {
		t.Errorf("Expected min_audio_score 0.5, got %g", config.Resolve.MinAudioScore)
	}
	if config.Resolve.MinReleaseTier != "album" {
		t.Errorf("Expected min_release_tier 'album', got %q", config.Resolve.MinReleaseTier)
	}
	if config.OutputDir != "out" {
		t.Errorf("Expected output_dir 'out', got %q", config.OutputDir)
	}
	if config.Workers != 4 {
		t.Errorf("Expected workers 4, got %d", config.Workers)
	}
	if !config.SkipUnconfident {
		t.Error("Expected skip_unconfident true")
	}

	// Unset fields get defaults
	if config.DownloadDir != "downloaded" {
		t.Errorf("Expected default download_dir, got %q", config.DownloadDir)
	}
	if config.SkipDir != "skipped" {
		t.Errorf("Expected default skip_dir, got %q", config.SkipDir)
	}
	if config.AcoustID.TimeoutSeconds != 10 {
		t.Errorf("Expected default timeout 10, got %g", config.AcoustID.TimeoutSeconds)
	}
	if !config.AcoustID.RateLimitEnabled || config.AcoustID.RateLimitRequests != 3 {
		t.Errorf("Expected default rate limit 3 req, got %+v", config.AcoustID)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Error("LoadConfig() should fail with non-existent file")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("Expected ConfigError, got %T", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("version: [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("LoadConfig() should fail on invalid YAML")
	}
}

func TestLoadConfig_AppKeyFromEnvironment(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("version: \"1.0\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(EnvAppKey, "env_app_key")
	t.Setenv(EnvUserKey, "env_user_key")

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.AcoustID.AppKey != "env_app_key" {
		t.Errorf("Expected app key from environment, got %q", config.AcoustID.AppKey)
	}
	if config.AcoustID.UserKey != "env_user_key" {
		t.Errorf("Expected user key from environment, got %q", config.AcoustID.UserKey)
	}
}

func TestLoadConfig_FileKeyWinsOverEnvironment(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configYAML := "version: \"1.0\"\nacoustid:\n  app_key: \"file_key\"\n"
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(EnvAppKey, "env_app_key")

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.AcoustID.AppKey != "file_key" {
		t.Errorf("Expected file key to win, got %q", config.AcoustID.AppKey)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		var c Config
		c.SetDefaults()
		c.AcoustID.AppKey = "key"
		return &c
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Validate() failed on valid config: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad version", func(c *Config) { c.Version = "2.0" }},
		{"missing app key", func(c *Config) { c.AcoustID.AppKey = "  " }},
		{"zero workers", func(c *Config) { c.Workers = -1 }},
		{"too many workers", func(c *Config) { c.Workers = 17 }},
		{"audio score above one", func(c *Config) { c.Resolve.MinAudioScore = 1.5 }},
		{"negative audio score", func(c *Config) { c.Resolve.MinAudioScore = -0.1 }},
		{"file score above hundred", func(c *Config) { c.Resolve.MinFileScore = 101 }},
		{"unknown tier", func(c *Config) { c.Resolve.MinReleaseTier = "ep" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if _, ok := err.(*ConfigError); !ok {
				t.Errorf("Expected ConfigError, got %T", err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(EnvAppKey, "env_key")

	config := DefaultConfig()
	if config.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %q", config.Version)
	}
	if config.Workers != 1 {
		t.Errorf("Expected 1 worker, got %d", config.Workers)
	}
	if config.Resolve.MinAudioScore != 0.40 || config.Resolve.MinFileScore != 70 {
		t.Errorf("Unexpected default thresholds: %+v", config.Resolve)
	}
	if config.Resolve.MinReleaseTier != "single" {
		t.Errorf("Expected default tier 'single', got %q", config.Resolve.MinReleaseTier)
	}
	if config.AcoustID.AppKey != "env_key" {
		t.Errorf("Expected environment key applied, got %q", config.AcoustID.AppKey)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Default config with an app key should validate: %v", err)
	}
}
