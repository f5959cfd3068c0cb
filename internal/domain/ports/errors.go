package ports

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for use with errors.Is. The typed errors below match these
// through their Is methods, so callers can branch on kind without caring
// about the concrete type.
var (
	ErrTransport = errors.New("transport failure")
	ErrAuth      = errors.New("authentication required")
	ErrSchema    = errors.New("malformed document")
	ErrConflict  = errors.New("remote file changed since last sync")
)

// TransportError indicates a network or service failure. It is retryable at
// the caller's discretion; the core never retries silently.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// AuthError indicates a missing, invalid, or expired credential. The caller
// must re-authenticate before retrying.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return "authentication required"
	}
	return "authentication required: " + e.Reason
}

func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// SchemaError indicates content that is not a well-formed document and could
// not be repaired. Index, when >= 0, is the position of the offending
// decision entry.
type SchemaError struct {
	Reason string
	Index  int
}

// NewSchemaError creates a SchemaError not tied to a decision index.
func NewSchemaError(reason string) *SchemaError {
	return &SchemaError{Reason: reason, Index: -1}
}

func (e *SchemaError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s (decision %d)", e.Reason, e.Index)
	}
	return e.Reason
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ConflictError indicates a write rejected because the remote file was
// modified after this session last synced it. The write is never attempted;
// the caller must re-fetch and re-apply, or force-overwrite.
type ConflictError struct {
	FileID         string
	RemoteModified time.Time
	LastSynced     time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("remote file %s changed at %s, after last sync at %s",
		e.FileID, e.RemoteModified.Format(time.RFC3339), e.LastSynced.Format(time.RFC3339))
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
