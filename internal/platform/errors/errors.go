package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
)

// Domain is the error domain reported in structured status details.
const Domain = "github.com/pestebani/tonic-server"

// Metadata keys attached by the constructors below.
const (
	MetadataID    = "id"
	MetadataField = "field"
	MetadataValue = "value"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error kind
	Message  string            // Human-readable message surfaced to callers
	Metadata map[string]string // Structured context, e.g. the id that was looked up
	Cause    error             // Engine error kept for diagnostics only
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error carrying structured metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Connection reports an unreachable backend.
func Connection(cause error) *Error {
	return Wrap(CodeConnection, "connection error with database", cause)
}

// NotFound reports a missing record and always carries the id that was looked up.
func NotFound(id int64) *Error {
	return WithMetadata(CodeNotFound, fmt.Sprintf("the element with id %d does not exist", id), map[string]string{
		MetadataID: strconv.FormatInt(id, 10),
	})
}

// AlreadyExists reports a uniqueness violation described by message.
func AlreadyExists(message string, cause error) *Error {
	return Wrap(CodeAlreadyExists, message, cause)
}

// NameAlreadyExists reports a violation of the agenda name uniqueness constraint.
func NameAlreadyExists(name string, cause error) *Error {
	return &Error{
		Code:    CodeAlreadyExists,
		Message: fmt.Sprintf("an entry named %s already exists", name),
		Metadata: map[string]string{
			MetadataField: "name",
			MetadataValue: name,
		},
		Cause: cause,
	}
}

// Unimplemented reports an operation the backend does not provide.
func Unimplemented() *Error {
	return New(CodeUnimplemented, "operation not implemented by storage backend")
}

// Unknown captures an unclassified backend failure with its message verbatim.
func Unknown(cause error) *Error {
	if cause == nil {
		return New(CodeUnknown, "unknown error")
	}
	return Wrap(CodeUnknown, cause.Error(), cause)
}

// EmptyInput reports a missing record payload.
func EmptyInput() *Error {
	return New(CodeEmptyInput, "missing agenda object in input")
}

// CodeOf returns the error kind carried by err. Errors outside the taxonomy
// report CodeUnknown; a nil error reports the empty code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given kind.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// NotFoundID returns the id carried by a NotFound error.
func NotFoundID(err error) (int64, bool) {
	var domainErr *Error
	if !stderrors.As(err, &domainErr) || domainErr.Code != CodeNotFound {
		return 0, false
	}
	id, parseErr := strconv.ParseInt(domainErr.Metadata[MetadataID], 10, 64)
	if parseErr != nil {
		return 0, false
	}
	return id, true
}
