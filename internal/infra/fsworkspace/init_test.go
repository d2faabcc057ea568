package fsworkspace

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/fsstore"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "kata.yaml"))
	assertFileExists(t, filepath.Join(tmp, "samples", "words.txt"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	info, err := os.Stat(filepath.Join(tmp, ".kata", "logs"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected .kata/logs dir, err=%v", err)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	kataYAML := filepath.Join(tmp, "kata.yaml")
	if err := os.WriteFile(kataYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing kata.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(kataYAML)
	if err != nil {
		t.Fatalf("read kata.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected kata.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(kataYAML)
	if err != nil {
		t.Fatalf("read kata.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "kata:") {
		t.Fatalf("expected kata.yaml overwritten with template, got %q", string(b))
	}
}

type failingStore struct {
	fsstore.Store
	err error
}

func (f *failingStore) WriteText(string, string) error { return f.err }

func TestInitializer_Init_PropagatesWriteErrors(t *testing.T) {
	boom := errors.New("read-only")
	i := NewInitializerWithStore(&failingStore{Store: *fsstore.New(), err: boom})

	err := i.Init(domain.WorkspaceSpec{Root: t.TempDir()}, false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}

func TestInitializer_Init_IgnoresConfiguredReportsDir(t *testing.T) {
	tmp := t.TempDir()
	cfg := "kata:\n  reports:\n    dir: out/summaries\n"
	if err := os.WriteFile(filepath.Join(tmp, "kata.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write kata.yaml: %v", err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "out/summaries/") {
		t.Fatalf("expected configured reports dir ignored, got:\n%s", s)
	}
	if strings.Contains(s, "\nreports/") {
		t.Fatalf("did not expect default reports/ entry, got:\n%s", s)
	}
}
