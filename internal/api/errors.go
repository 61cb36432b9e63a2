package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies catalog failures by how the interface recovers from them.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindValidation
	KindConflict
	KindInUse
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindInUse:
		return "in_use"
	case KindNotFound:
		return "not_found"
	default:
		return "transport"
	}
}

// Sentinels for errors.Is. Only Kind is compared.
var (
	ErrTransport  = &Error{Kind: KindTransport}
	ErrValidation = &Error{Kind: KindValidation}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrInUse      = &Error{Kind: KindInUse}
	ErrNotFound   = &Error{Kind: KindNotFound}
)

// Error is returned by every Catalog implementation.
type Error struct {
	Kind    ErrorKind
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Code != "" && e.Code != msg {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError builds an error of the given kind with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err. Errors that did not come from a catalog
// are treated as transport failures.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindTransport
}

// Message returns the human readable reason carried by err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// classifyStatus maps an HTTP failure onto the error taxonomy. refDelete
// marks reference deletion, where the service answers 409 for references
// still held by records.
func classifyStatus(status int, code string, refDelete bool) ErrorKind {
	switch {
	case code == "in_use":
		return KindInUse
	case code == "duplicate" || code == "conflict":
		return KindConflict
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict && refDelete:
		return KindInUse
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindTransport
	}
}
