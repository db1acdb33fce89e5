package contract

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/rfn/internal/layout"
)

// ErrorCode categorizes contract errors.
type ErrorCode string

const (
	// ErrCodeLoadFailed indicates the contract source could not be read or parsed.
	ErrCodeLoadFailed ErrorCode = "LOAD_FAILED"

	// ErrCodeSchemaInvalid indicates the contract does not satisfy the schema.
	ErrCodeSchemaInvalid ErrorCode = "SCHEMA_INVALID"

	// ErrCodeMissingLayout indicates the contract names a representation this
	// binary does not have.
	ErrCodeMissingLayout ErrorCode = "MISSING_LAYOUT"

	// ErrCodeLayoutMismatch indicates a local layout differs from the contract.
	ErrCodeLayoutMismatch ErrorCode = "LAYOUT_MISMATCH"
)

// Error is a contract load or check failure.
type Error struct {
	Code ErrorCode

	// Layout is the representation name, for check errors.
	Layout string

	Message string

	// Pos locates the problem in the contract source when CUE reports it.
	Pos token.Pos

	// Mismatches lists field-level differences for ErrCodeLayoutMismatch.
	Mismatches []layout.Mismatch
}

// Error renders the position, code, layout and mismatches on one line.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Pos.IsValid() {
		fmt.Fprintf(&b, "%s:%d:%d: ", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column())
	}
	b.WriteString(string(e.Code))
	if e.Layout != "" {
		fmt.Fprintf(&b, " (%s)", e.Layout)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	for _, m := range e.Mismatches {
		b.WriteString("; ")
		b.WriteString(m.String())
	}
	return b.String()
}

// IsMismatch reports whether err is a layout mismatch or a missing layout.
func IsMismatch(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeLayoutMismatch || ce.Code == ErrCodeMissingLayout
	}
	return false
}

// IsSchemaError reports whether err is a schema violation.
func IsSchemaError(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeSchemaInvalid
	}
	return false
}

// cueError converts a CUE error into an Error carrying the first position.
func cueError(code ErrorCode, err error) error {
	if err == nil {
		return nil
	}
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Code: code, Message: err.Error()}
	}
	first := errs[0]
	ce := &Error{Code: code, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		ce.Pos = positions[0]
	}
	return ce
}
