package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, _, exists, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected no config file to exist")
	}
	if cfg.FFmpegBinary() != "ffmpeg" || cfg.FFprobeBinary() != "ffprobe" {
		t.Fatalf("unexpected binaries: %+v", cfg.Binaries)
	}
	if cfg.Probe.Workers != defaultProbeWorkers {
		t.Fatalf("workers = %d", cfg.Probe.Workers)
	}
	if cfg.Output.DefaultGenre != "Audiobook" {
		t.Fatalf("default genre = %q", cfg.Output.DefaultGenre)
	}
	if cfg.Output.BitrateFloor != 64 || cfg.Output.BitrateCeiling != 256 {
		t.Fatalf("bitrate bounds = %d..%d", cfg.Output.BitrateFloor, cfg.Output.BitrateCeiling)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[binaries]",
		`ffmpeg = "  /opt/ffmpeg/bin/ffmpeg  "`,
		"[logging]",
		`format = "JSON"`,
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatal("expected config file to be read")
	}
	if cfg.FFmpegBinary() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("ffmpeg binary = %q", cfg.FFmpegBinary())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsMissingExplicitPath(t *testing.T) {
	if _, _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Probe.Workers = 0 },
		func(c *Config) { c.Output.BitrateFloor = 4 },
		func(c *Config) { c.Output.BitrateCeiling = 32 },
		func(c *Config) { c.Logging.Format = "yaml" },
		func(c *Config) { c.Output.SampleRate = 100 },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if err := CreateSample(path); err == nil {
		t.Fatal("expected error on second CreateSample")
	}
	cfg, _, exists, err := Load(path)
	if err != nil || !exists {
		t.Fatalf("sample config should load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}
