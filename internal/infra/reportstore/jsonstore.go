package reportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
)

const defaultReportsDir = "reports"

// JSONStore writes one JSON document per report under <root>/<dir>.
type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex toggles the JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Reports.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:    root,
		dirName:    dir,
		writeIndex: cfg.Reports.Index,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) SaveReport(report domain.TextReport) (string, error) {
	dir := filepath.Join(s.rootDir, s.dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindFileAccess,
			Path: dir,
			Err:  err,
		}
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = s.now()
	}
	report.CreatedAt = report.CreatedAt.UTC()

	slug := slugify(strings.TrimSuffix(filepath.Base(report.SourcePath), filepath.Ext(report.SourcePath)))
	if slug == "" {
		slug = "report"
	}

	id := fmt.Sprintf("%s_%s", report.CreatedAt.Format("20060102T150405Z"), slug)
	path := filepath.Join(dir, id+".json")
	for n := 2; fileExists(path); n++ {
		id = fmt.Sprintf("%s_%s-%d", report.CreatedAt.Format("20060102T150405Z"), slug, n)
		path = filepath.Join(dir, id+".json")
	}

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindFileAccess,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindFileAccess,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, report)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id string, report domain.TextReport) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Source    string    `json:"source"`
		Words     int       `json:"words"`
		CreatedAt time.Time `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      id + ".json",
		Source:    report.SourcePath,
		Words:     report.Words,
		CreatedAt: report.CreatedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			// any other char -> single dash
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
