package utils

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Failure classes of the policy data-access layer. Match with errors.Is.
var (
	ErrTransport  = errors.New("transport_failure")
	ErrNotFound   = errors.New("not_found")
	ErrValidation = errors.New("validation_failed")
)

/*
TransportError is returned when the remote collection could not be reached,
answered with a non-2xx status, or sent a body that could not be decoded.
StatusCode is zero when no HTTP response was received.
*/
type TransportError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: %s %s: %d %s: %v", e.Op, e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %s %s: %d %s", e.Op, e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: %s %s failed", e.Op, e.Method, e.URL)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports ErrTransport for every TransportError and ErrNotFound for a 404.
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// ValidationError carries field-level error codes keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Code returns the error code recorded for field, or "".
func (e *ValidationError) Code(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}
