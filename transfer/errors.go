// Package transfer implements the HTTP client for the PeerLink backend.
//
// This file defines sentinel errors and the typed error wrapper for
// classifying transfer failures. These enable callers to use
// errors.Is/errors.As for typed assertions rather than string matching.
package transfer

import (
	"errors"
	"fmt"
)

// Sentinel errors for transfer failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrUnreachable indicates the backend could not be reached at all
	// (connection refused, DNS failure, broken transport).
	ErrUnreachable = errors.New("backend unreachable")

	// ErrNotFound indicates the backend does not know the identifier
	// (unknown, expired, or mistyped).
	ErrNotFound = errors.New("identifier not found")

	// ErrServer indicates the backend reported a failure (non-2xx response).
	ErrServer = errors.New("server error")

	// ErrBadResponse indicates a 2xx response with an unusable payload,
	// e.g. an upload response missing the identifier field.
	ErrBadResponse = errors.New("invalid server response")
)

// TransferError wraps an underlying error with transfer classification.
// It preserves the original error in the chain for inspection via errors.As.
type TransferError struct {
	// Kind is the sentinel error for classification (e.g., ErrNotFound).
	Kind error
	// Op is the operation that failed: "upload" or "download".
	Op string
	// Status is the HTTP status code, if the backend responded.
	Status int
	// Detail is backend-provided error text from the response body, if any.
	Detail string
	// Err is the underlying error, if any.
	Err error
}

func (e *TransferError) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: %v (status %d)", e.Op, e.Kind, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

// Unwrap returns the underlying error for errors.Is/As chain traversal.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *TransferError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// transportError classifies a failed HTTP exchange. Any transport-level
// failure maps to ErrUnreachable: the backend never saw the request.
func transportError(op string, err error) error {
	return &TransferError{Kind: ErrUnreachable, Op: op, Err: err}
}

// statusError classifies a non-2xx backend response. A 404 means the
// identifier is unknown or expired; everything else is a server-reported
// failure with whatever detail the body carried.
func statusError(op string, status int, body string) error {
	kind := ErrServer
	if status == 404 {
		kind = ErrNotFound
	}
	return &TransferError{Kind: kind, Op: op, Status: status, Detail: body}
}

// protocolError classifies a 2xx response with an unusable payload.
func protocolError(op, detail string, err error) error {
	return &TransferError{Kind: ErrBadResponse, Op: op, Detail: detail, Err: err}
}
