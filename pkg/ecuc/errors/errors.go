package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind categorizes a failure of the extraction core.
type Kind string

const (
	// KindFileNotFound indicates the document path did not resolve.
	KindFileNotFound Kind = "file-not-found"
	// KindMalformedDocument indicates an XML syntax error.
	KindMalformedDocument Kind = "malformed-document"
	// KindUnsupportedDialect indicates both parser strategies yielded no content.
	KindUnsupportedDialect Kind = "unsupported-dialect"
	// KindElementSkipped indicates an element without a resolvable name was
	// dropped. Skips are tallied by the parsers and never surface as a
	// parse failure; the kind exists for completeness of the taxonomy.
	KindElementSkipped Kind = "element-skipped"
	// KindInstanceLimitExceeded indicates instance creation hit the
	// container's numeric multiplicity bound.
	KindInstanceLimitExceeded Kind = "instance-limit-exceeded"
	// KindInstanceNotFound indicates an instance id outside the dense range.
	KindInstanceNotFound Kind = "instance-not-found"
	// KindUnknownPath indicates a container or variable path that names
	// nothing in the model.
	KindUnknownPath Kind = "unknown-path"
)

// Error is a structured failure value with a kind, a human-readable message
// and the document or container path it refers to.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Path, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithPath returns a copy of the error annotated with a path.
func (e *Error) WithPath(path string) *Error {
	clone := *e
	clone.Path = path
	return &clone
}

// IsKind reports whether err is (or wraps) an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or the empty Kind when err carries no
// structured kind.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
