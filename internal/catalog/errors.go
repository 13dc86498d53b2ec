package catalog

import (
	"errors"
	"fmt"
)

// Error kinds raised while building a catalog. Every failure returned by the
// Builder wraps exactly one of them, so callers can test with errors.Is.
var (
	ErrPathNotFound        = errors.New("non existing path")
	ErrInvalidResourceKind = errors.New("not a regular file, nor a directory")
	ErrDuplicateResource   = errors.New("twice the same resource")
	ErrDuplicatePath       = errors.New("twice the same filename (check case)")
	ErrNamingViolation     = errors.New("naming violation")
)

var (
	errInvalidIdentifier = errors.New("resource name must match [A-Z_][A-Z0-9_]*")
	errUpcasePath        = errors.New("path in a directory with an upcase letter")
)

// ResourceError reports which resource and which path caused a catalog failure.
type ResourceError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Resource is the uppercased resource name being registered.
	Resource string
	// Path is the offending source path or relative path.
	Path string
	// Err is the underlying cause, if any (e.g. a filesystem error).
	Err error
}

func newResourceError(kind error, resource, path string, cause error) error {
	return &ResourceError{
		Kind:     kind,
		Resource: resource,
		Path:     path,
		Err:      cause,
	}
}

func (e *ResourceError) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Resource != "" {
		msg = fmt.Sprintf("resource %s: %s", e.Resource, msg)
	}
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *ResourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
