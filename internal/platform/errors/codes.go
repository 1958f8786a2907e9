// Package errors defines the closed set of error kinds that agenda storage
// backends report, independent of any storage engine or transport.
package errors

// Code is a machine-readable error kind.
type Code string

const (
	// CodeConnection reports that the storage backend is unreachable.
	CodeConnection Code = "CONNECTION_ERROR"
	// CodeNotFound reports that no record exists for the requested id.
	CodeNotFound Code = "NOT_FOUND"
	// CodeAlreadyExists reports a uniqueness constraint violation.
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	// CodeUnimplemented reports an operation the backend does not provide.
	CodeUnimplemented Code = "UNIMPLEMENTED"
	// CodeUnknown reports an unclassified backend failure.
	CodeUnknown Code = "UNKNOWN"
	// CodeEmptyInput reports a missing record payload.
	CodeEmptyInput Code = "EMPTY_INPUT"
)

// Codes lists every error kind in declaration order.
func Codes() []Code {
	return []Code{
		CodeConnection,
		CodeNotFound,
		CodeAlreadyExists,
		CodeUnimplemented,
		CodeUnknown,
		CodeEmptyInput,
	}
}

// Valid reports whether c belongs to the closed set.
func (c Code) Valid() bool {
	switch c {
	case CodeConnection, CodeNotFound, CodeAlreadyExists, CodeUnimplemented, CodeUnknown, CodeEmptyInput:
		return true
	default:
		return false
	}
}
