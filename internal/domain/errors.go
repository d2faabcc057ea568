package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeArgument = errors.New("negative argument")
	ErrNotFound         = errors.New("not found")
	ErrInvalidConfig    = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindEmptyInput       ErrorKind = "empty_input"
	KindDivisionByZero   ErrorKind = "division_by_zero"
	KindNegativeArgument ErrorKind = "negative_argument"
	KindFileAccess       ErrorKind = "file_access"
	KindNotFound         ErrorKind = "not_found"
	KindInvalidConfig    ErrorKind = "invalid_config"
	KindExecution        ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EmptyInput reports an operation that needs at least one element.
func EmptyInput(op string) error {
	return &OpError{Op: op, Kind: KindEmptyInput, Err: ErrEmptyInput}
}

// DivisionByZero reports a zero divisor.
func DivisionByZero(op string) error {
	return &OpError{Op: op, Kind: KindDivisionByZero, Err: ErrDivisionByZero}
}

// NegativeArgument reports an argument that must be >= 0.
func NegativeArgument(op string, n int) error {
	return &OpError{
		Op:   op,
		Kind: KindNegativeArgument,
		Err:  fmt.Errorf("%w: %d", ErrNegativeArgument, n),
	}
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
