package fsstore

import (
	"errors"
	"io"
	"os"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
)

// Store reads and writes whole text files on the local filesystem.
// Every call owns its file handle and closes it before returning.
type Store struct {
	perm os.FileMode
}

type Option func(*Store)

// WithPerm sets the mode used when WriteText creates a file.
func WithPerm(perm os.FileMode) Option {
	return func(s *Store) { s.perm = perm }
}

func New(opts ...Option) *Store {
	s := &Store{perm: 0o644}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.FileStore = (*Store)(nil)

func (s *Store) ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", accessErr("fsstore.open", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", accessErr("fsstore.read", path, err)
	}
	return string(b), nil
}

func (s *Store) WriteText(path, content string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, s.perm)
	if err != nil {
		return accessErr("fsstore.open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = accessErr("fsstore.close", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return accessErr("fsstore.write", path, err)
	}
	return nil
}

func accessErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindFileAccess,
		Path: path,
		Err:  err,
	}
}

// IsNotExist reports whether err came from a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
