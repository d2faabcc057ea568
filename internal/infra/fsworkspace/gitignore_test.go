package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().ensureGitignore(tmp, "reports"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}

	s := string(b)
	wants := []string{
		"# kata",
		".kata/",
		"reports/",
	}
	for _, w := range wants {
		if !strings.Contains(s, w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, s)
		}
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	existing := "node_modules/\n# kata\nreports/"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := NewInitializer().ensureGitignore(tmp, "reports"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)

	if !strings.Contains(s, "node_modules/") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if strings.Count(s, "# kata") != 1 {
		t.Fatalf("expected 1 header, got:\n%s", s)
	}
	if strings.Count(s, "reports/") != 1 {
		t.Fatalf("expected reports/ not duplicated, got:\n%s", s)
	}

	wants := []string{
		".kata/",
	}
	for _, w := range wants {
		if !strings.Contains(s, w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, s)
		}
	}
}

func TestEnsureGitignore_NoopWhenComplete(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	existing := "# kata\n.kata/\nreports/\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := NewInitializer().ensureGitignore(tmp, "reports"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if string(b) != existing {
		t.Fatalf("expected untouched file, got:\n%s", string(b))
	}
}

func TestGitignoreEntries(t *testing.T) {
	cases := []struct {
		dir  string
		want string
	}{
		{"reports", ".kata/,reports/"},
		{"out/reports/", ".kata/,out/reports/"},
		{"./artifacts", ".kata/,artifacts/"},
		{"", ".kata/"},
		{"../shared", ".kata/"},
		{"/var/kata", ".kata/"},
	}
	for _, c := range cases {
		if got := strings.Join(gitignoreEntries(c.dir), ","); got != c.want {
			t.Errorf("gitignoreEntries(%q) = %q, want %q", c.dir, got, c.want)
		}
	}
}
