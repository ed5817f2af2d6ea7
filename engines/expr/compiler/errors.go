package compiler

import "errors"

var (
	ErrContentNil       = errors.New("expr content is nil")
	ErrNoStatements     = errors.New("expr program has zero statements")
	ErrValidationFailed = errors.New("expr script validation error")
)
