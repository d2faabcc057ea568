package fsworkspace

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/fsstore"
	"github.com/aalvaropc/kata/internal/infra/workspacefinder"
	"github.com/aalvaropc/kata/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

const gitignoreHeader = "# kata"

// gitignoreEntries lists what kata writes under root. A reports dir outside
// root (absolute or "..") is not ours to ignore.
func gitignoreEntries(reportsDir string) []string {
	entries := []string{".kata/"}

	dir := filepath.ToSlash(filepath.Clean(strings.TrimSpace(reportsDir)))
	if dir == "" || dir == "." || filepath.IsAbs(reportsDir) || dir == ".." || strings.HasPrefix(dir, "../") {
		return entries
	}
	return append(entries, dir+"/")
}

// Initializer lays out a workspace: kata.yaml, sample inputs and .gitignore entries.
type Initializer struct {
	files ports.FileStore
}

func NewInitializer() *Initializer {
	return &Initializer{files: fsstore.New()}
}

// NewInitializerWithStore writes through the given store instead of the local disk default.
func NewInitializerWithStore(files ports.FileStore) *Initializer {
	return &Initializer{files: files}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, d := range []string{root, filepath.Join(root, ".kata", "logs")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindFileAccess, Path: d, Err: err}
		}
	}

	if err := i.writeTemplates(root, force); err != nil {
		return err
	}

	// kata.yaml may predate this run; gitignore the reports dir it names.
	reportsDir := domain.DefaultConfig().Reports.Dir
	if cfg, err := workspacefinder.LoadConfig(root); err == nil {
		reportsDir = cfg.Reports.Dir
	}
	return i.ensureGitignore(root, reportsDir)
}

func (i *Initializer) writeTemplates(root string, force bool) error {
	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindFileAccess, Path: dst, Err: err}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		return i.files.WriteText(dst, string(b))
	})
}

func (i *Initializer) ensureGitignore(root, reportsDir string) error {
	path := filepath.Join(root, ".gitignore")
	entries := gitignoreEntries(reportsDir)

	existing, err := i.files.ReadText(path)
	if err != nil {
		if !fsstore.IsNotExist(err) {
			return err
		}
		lines := append([]string{gitignoreHeader}, entries...)
		return i.files.WriteText(path, strings.Join(lines, "\n")+"\n")
	}

	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return i.files.WriteText(path, out.String())
}
