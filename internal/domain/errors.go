package domain

import (
	"errors"
	"fmt"
)

// Kind categorizes failures surfaced by the finder.
type Kind string

const (
	KindInvalidArgument    Kind = "InvalidArgument"
	KindUnauthorized       Kind = "Unauthorized"
	KindUnacceptableFormat Kind = "UnacceptableFormat"
	KindServiceUnavailable Kind = "ServiceUnavailable"
	KindTimeout            Kind = "Timeout"
	KindGenericError       Kind = "GenericError"
	KindNetworkFailure     Kind = "NetworkFailure"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrUnacceptableFormat = &Error{Kind: KindUnacceptableFormat}
	ErrServiceUnavailable = &Error{Kind: KindServiceUnavailable}
	ErrTimeout            = &Error{Kind: KindTimeout}
	ErrGenericError       = &Error{Kind: KindGenericError}
	ErrNetworkFailure     = &Error{Kind: KindNetworkFailure}
)

// Error is a categorized failure: a kind plus a human readable message.
// Err holds the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// WrapError attaches a kind and message to an underlying cause.
func WrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err == nil:
		return string(e.Kind)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Message == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error with the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain,
// or the empty kind when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
