package main

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// parseError covers spec.md §7's "Parse errors" kind: unbalanced parens,
// unterminated quotes, reserved literals, extraneous trailing characters,
// missing redirection targets.
type parseError struct{ msg string }

func (e parseError) Error() string { return e.msg }

// typeError covers the four builtin signature-checker sub-kinds from
// spec.md §4.5/§7.
type typeErrorKind int

const (
	errTypeMismatch typeErrorKind = iota
	errExtraneousArgs
	errNotEnoughArgs
	errBadSpec
)

type typeError struct {
	kind typeErrorKind
	msg  string
}

func (e typeError) Error() string { return e.msg }

// wrapResourceError wraps an OS-level failure (open/pipe/fork/exec) with a
// stack trace via github.com/go-errors/errors, the way lazydocker/
// lazypodman's pkg/commands wraps exec.Cmd failures (see SPEC_FULL.md §4.0).
func wrapResourceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return goerrors.WrapPrefix(err, op, 1)
}

// runtimeError covers spec.md §7's "Runtime errors" kind: bad number,
// invalid job index, unknown command, invalid alias. These are always
// recovered locally: the builtin logs and returns Void.
type runtimeError struct{ msg string }

func (e runtimeError) Error() string { return e.msg }

func newRuntimeError(format string, args ...interface{}) runtimeError {
	return runtimeError{fmt.Sprintf(format, args...)}
}
