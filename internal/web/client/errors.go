package client

import (
	"errors"
	"fmt"
)

// Kind classifies why a backend call failed.
type Kind string

const (
	KindTransport Kind = "transport" // request could not be sent or the response not read
	KindStatus    Kind = "status"    // non-2xx status where a success body was required
	KindMalformed Kind = "malformed" // body missing the fields the endpoint promises
)

type Error struct {
	Kind       Kind
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Endpoint, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a client *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}
