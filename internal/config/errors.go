package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidationFailed matches every *ValidationError with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// ParseError is a config file that is not valid TOML or does not fit the
// Config schema. Line and Column are zero when the decoder gave no position.
type ParseError struct {
	File         string
	Line, Column int
	Detail       string
	Err          error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error in %s", e.File)
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ", column %d", e.Column)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Detail)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError is a setting whose value is out of range.
type ValidationError struct {
	// Setting is the dotted key, e.g. "editor.tab_width".
	Setting string
	Reason  string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Setting, e.Reason, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
