package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/kata/internal/domain"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "kata.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")

	// Partial config (no reports/output)
	writeConfig(t, root, "kata:\n  random:\n    seed: 42\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Random.Seed == nil || *cfg.Random.Seed != 42 {
		t.Fatalf("expected seed=42, got=%v", cfg.Random.Seed)
	}
	if cfg.Reports.Dir != "reports" {
		t.Fatalf("expected reports dir=reports, got=%s", cfg.Reports.Dir)
	}
	if !cfg.Reports.Index {
		t.Fatalf("expected index enabled by default")
	}
	if cfg.Output.Format != "pretty" {
		t.Fatalf("expected format=pretty, got=%s", cfg.Output.Format)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "kata:\n  reports:\n    dir: out\n    index: false\n  output:\n    format: json\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Random.Seed != nil {
		t.Fatalf("expected no seed, got=%d", *cfg.Random.Seed)
	}
	if cfg.Reports.Dir != "out" || cfg.Reports.Index {
		t.Fatalf("unexpected reports config: %+v", cfg.Reports)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected format=json, got=%s", cfg.Output.Format)
	}
}

func TestLoadConfig_UnknownFormat(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "kata:\n  output:\n    format: xml\n")

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected format in error, got %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "kata: [unclosed\n")

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if cfg.Reports.Dir != "reports" {
		t.Fatalf("expected defaults even on error, got %+v", cfg)
	}
}
