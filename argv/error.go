package argv

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// Predefined errors (sentinel values).
var (
	ErrInvalidEnum     = NewError("invalid enumeration text")
	ErrInvalidTemplate = NewError("invalid template")
)

// Error is an error with structured logging attributes.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error { return &Error{msg: msg} }

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same message, so that
// sentinels still match after [Error.With] or [Error.Wrap].
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.msg == e.msg && t.err == nil
}

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e wrapping err.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...),
	}
}

// Template validation codes and metadata keys attached to the
// [cuserr.CustomError] values returned by [Command.Validate].
const (
	ErrCodeTemplate = "ARGOT_TEMPLATE"

	MetaKeyScope = "scope"
	MetaKeyName  = "name"
	MetaKeyField = "field"
)

// Template validation messages.
const (
	ErrMsgNoName          = "option has neither a short nor a long name"
	ErrMsgBadShortName    = "short name must be a letter"
	ErrMsgBadLongName     = "long name is not a valid option word"
	ErrMsgDuplicateOption = "duplicate option name in scope"
	ErrMsgDuplicateCmd    = "duplicate subcommand name among siblings"
	ErrMsgEmptyCmdName    = "subcommand has an empty name"
	ErrMsgExcessDefaults  = "more defaults than parameters"
)

func newTemplateError(msg, scope, field, name string) error {
	err := cuserr.NewValidationError(ErrCodeTemplate, msg).
		WithMetadata(MetaKeyScope, scope).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyName, name)

	return ErrInvalidTemplate.Wrap(err)
}
