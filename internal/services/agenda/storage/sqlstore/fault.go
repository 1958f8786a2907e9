package sqlstore

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
)

// Fault is the engine-independent class of a storage failure.
type Fault int

const (
	// FaultOther is any failure without a more specific class.
	FaultOther Fault = iota
	// FaultConnection means the engine could not be reached.
	FaultConnection
	// FaultUniqueName is a violation of the agenda name constraint.
	FaultUniqueName
	// FaultConstraint is a violation of some other integrity constraint.
	FaultConstraint
)

func (f Fault) String() string {
	switch f {
	case FaultConnection:
		return "connection"
	case FaultUniqueName:
		return "unique_name"
	case FaultConstraint:
		return "constraint"
	default:
		return "other"
	}
}

// ClassifyCommon recognises connection failures every database/sql driver
// reports the same way.
func ClassifyCommon(err error) Fault {
	if err == nil {
		return FaultOther
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return FaultConnection
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return FaultConnection
	}
	return FaultOther
}
