package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind string

const (
	// KindUnsupportedFileType means the extension is not allowed, or source and target differ in type.
	KindUnsupportedFileType Kind = "unsupported_file_type"
	// KindParse means a tabular or tree input could not be decoded.
	KindParse Kind = "parse_failure"
	// KindStructureIncompatible means one side is missing its columns/rows or the kinds differ.
	KindStructureIncompatible Kind = "structure_incompatible"
	// KindEmptyInput means zero fields or rows were supplied where some are required.
	KindEmptyInput Kind = "empty_input"
	// KindInvalidInput means a request parameter is outside its allowed range.
	KindInvalidInput Kind = "invalid_input"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrUnsupportedFileType   = &Error{Kind: KindUnsupportedFileType}
	ErrParse                 = &Error{Kind: KindParse}
	ErrStructureIncompatible = &Error{Kind: KindStructureIncompatible}
	ErrEmptyInput            = &Error{Kind: KindEmptyInput}
	ErrInvalidInput          = &Error{Kind: KindInvalidInput}
)

// Error is a classified failure with a human readable message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err == nil:
		return string(e.Kind)
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	default:
		return e.Message + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a failure of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New creates a failure of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a failure of the given kind that carries err as its cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// StatusCode maps a failure to the HTTP status the API answers with.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindUnsupportedFileType, KindEmptyInput, KindInvalidInput, KindStructureIncompatible:
		return http.StatusBadRequest
	case KindParse:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
