package types

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorKind classifies a request-terminal failure. Anything the services
// return that is not one of these kinds is treated as an internal error.
type ErrorKind int

const (
	KindUnauthenticated ErrorKind = iota
	KindForbidden
	KindNotFound
	KindConflict
)

// StatusError is a terminal, caller-facing failure. Key names the error the
// way the API body does ("email", "noprofile", "alreadyliked", ...), so
// handlers can render {key: message} objects without re-mapping.
type StatusError struct {
	Kind    ErrorKind
	Key     string
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// NewUnauthenticated builds a 401-class error.
func NewUnauthenticated(key, message string) *StatusError {
	return &StatusError{Kind: KindUnauthenticated, Key: key, Message: message}
}

// NewForbidden builds a 403-class error.
func NewForbidden(key, message string) *StatusError {
	return &StatusError{Kind: KindForbidden, Key: key, Message: message}
}

// NewNotFound builds a 404-class error.
func NewNotFound(key, message string) *StatusError {
	return &StatusError{Kind: KindNotFound, Key: key, Message: message}
}

// NewConflict builds a 409-class error.
func NewConflict(key, message string) *StatusError {
	return &StatusError{Kind: KindConflict, Key: key, Message: message}
}

// ValidationError carries every violated field of a request, keyed by field
// name. It is surfaced verbatim as the response body.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
