package util

import (
	"errors"
	"fmt"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	if e.orig != nil {
		return e.orig
	}
	return e.code
}

// Is matches the error's code, so errors.Is works against the sentinels
// even when a cause is wrapped.
func (e *Error) Is(target error) bool {
	return target == e.code
}

func (e *Error) Code() error {
	return e.code
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

var (
	ErrBadParamInput = errors.New("given Param is not valid")
	ErrInvalidConfig = errors.New("ruleset config is not valid")
)
