package util

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation_error"
	KindNotFound   ErrorKind = "not_found"
	KindUpstream   ErrorKind = "upstream_error"
)

// APIError carries the HTTP status a handler should answer with.
type APIError struct {
	Status int
	Kind   ErrorKind
	Err    error
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// Validation is a missing or malformed field, or an unresolvable reference
// inside a write (400).
func Validation(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusBadRequest, Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound reports that the addressed entity does not exist (404).
func NotFound(what string) *APIError {
	return &APIError{Status: http.StatusNotFound, Kind: KindNotFound, Err: errors.New(what + " not found")}
}

// Upstream wraps a datastore or blob store failure (500).
func Upstream(err error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Kind: KindUpstream, Err: err}
}

// AsAPIError classifies any error; unknown errors are upstream failures.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Upstream(err)
}

// UpstreamMessage renders "<type>: <message>" using the type of the innermost
// wrapped error, so callers see which layer rejected the operation.
func UpstreamMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			break
		}
		root = next
	}
	typeName := strings.TrimPrefix(reflect.TypeOf(root).String(), "*")
	return typeName + ": " + err.Error()
}
