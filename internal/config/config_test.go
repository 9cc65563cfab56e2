package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Naming != NamingDefault {
		t.Errorf("Naming = %q, want %q", cfg.Naming, NamingDefault)
	}
	if !cfg.Parallel {
		t.Error("Parallel should default to true")
	}
	if cfg.Concurrency < 1 || cfg.Concurrency > 4 {
		t.Errorf("Concurrency = %d, want 1-4", cfg.Concurrency)
	}
}

func TestLoad(t *testing.T) {
	content := `naming: sequential
prefix: ep_
parallel: false
concurrency: 2
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Naming != NamingSequential {
		t.Errorf("Naming = %q, want sequential", cfg.Naming)
	}
	if cfg.Prefix != "ep_" {
		t.Errorf("Prefix = %q, want ep_", cfg.Prefix)
	}
	if cfg.Parallel {
		t.Error("Parallel should be false")
	}
	if cfg.Concurrency != 2 {
		t.Errorf("Concurrency = %d, want 2", cfg.Concurrency)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("prefix: x\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Naming != NamingDefault {
		t.Errorf("Naming = %q, want default", cfg.Naming)
	}
	if !cfg.Parallel {
		t.Error("Parallel should keep its default")
	}
	if cfg.Prefix != "x" {
		t.Errorf("Prefix = %q, want x", cfg.Prefix)
	}
}

func TestLoadInvalidNaming(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("naming: random\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid naming mode")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateNormalizesConcurrency(t *testing.T) {
	cfg := Config{Naming: NamingDefault, Concurrency: -1}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.Concurrency < 1 {
		t.Errorf("Concurrency = %d, want positive", cfg.Concurrency)
	}
}
