package fsstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/aalvaropc/kata/internal/domain"
)

func TestStore_WriteThenRead(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "note.txt")

	s := New()
	if err := s.WriteText(p, "hello\nworld"); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}

	got, err := s.ReadText(p)
	if err != nil {
		t.Fatalf("ReadText error: %v", err)
	}
	if got != "hello\nworld" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestStore_WriteTruncatesExisting(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "note.txt")
	if err := os.WriteFile(p, []byte("a much longer original body"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.WriteText(p, "short"); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "short" {
		t.Fatalf("expected truncation, got %q", string(b))
	}
}

func TestStore_WriteUsesPerm(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	tmp := t.TempDir()
	p := filepath.Join(tmp, "secret.txt")

	if err := New(WithPerm(0o600)).WriteText(p, "x"); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("expected mode 600, got %o", got)
	}
}

func TestStore_ReadMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.txt")

	_, err := New().ReadText(p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindFileAccess) {
		t.Fatalf("expected KindFileAccess, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) || !IsNotExist(err) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Path != p {
		t.Fatalf("expected path %s in error, got %v", p, err)
	}
}

func TestStore_WriteIntoMissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope", "file.txt")

	err := New().WriteText(p, "x")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindFileAccess) {
		t.Fatalf("expected KindFileAccess, got %v", err)
	}
}

func TestStore_ReadDirectoryFails(t *testing.T) {
	_, err := New().ReadText(t.TempDir())
	if err == nil {
		t.Fatal("expected error reading a directory")
	}
	if !domain.IsKind(err, domain.KindFileAccess) {
		t.Fatalf("expected KindFileAccess, got %v", err)
	}
}
