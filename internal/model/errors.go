package model

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the dump file does not exist.
// Checked before any stage runs so a bad path fails immediately.
var ErrInputNotFound = errors.New("input file not found")

// ParseError indicates malformed XML or unexpected dump structure.
// Fatal: extraction aborts, there is no partial-output recovery.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
