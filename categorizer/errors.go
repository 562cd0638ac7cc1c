package categorizer

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for pipeline failures.
type ErrorKind string

const (
	KindNetwork       ErrorKind = "network"
	KindParse         ErrorKind = "parse"
	KindMissingColumn ErrorKind = "missing_column"
	KindIO            ErrorKind = "io"
	KindInvalidConfig ErrorKind = "invalid_config"
)

// OpError wraps an underlying error with the failing operation and its kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
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

// IsKind reports whether any OpError in err's chain has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
