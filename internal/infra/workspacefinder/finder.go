package workspacefinder

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/aalvaropc/kata/internal/domain"
)

// Finder walks up from a directory until it sees the marker file.
type Finder struct {
	Marker string
}

func NewFinder() *Finder {
	return &Finder{Marker: ConfigFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("startDir is empty")}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for d := range ancestors(dir) {
		if info, err := os.Stat(filepath.Join(d, f.Marker)); err == nil && !info.IsDir() {
			return d, nil
		}
	}
	return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: dir, Err: domain.ErrNotFound}
}

// ancestors yields dir and each parent up to the filesystem root.
func ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		cur := filepath.Clean(dir)
		for {
			if !yield(cur) {
				return
			}
			parent := filepath.Dir(cur)
			if parent == cur {
				return
			}
			cur = parent
		}
	}
}
