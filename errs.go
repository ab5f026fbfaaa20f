package keyparse

import (
	"errors"
	"fmt"
)

var (
	ErrPattern        = errors.New("bad pattern")
	ErrDuplicateField = errors.New("duplicate field")
	ErrStructure      = errors.New("structure mismatch")
	ErrNoMatch        = errors.New("no match")
	ErrDescription    = errors.New("bad description")
)

// PatternError reports a file pattern which did not compile, together
// with its position in the file list.
type PatternError struct {
	Name    string
	Pattern string
	Pos     int
	Err     error
}

func (e *PatternError) Unwrap() error {
	return ErrPattern
}

func (e *PatternError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: file pattern %q at entry %d: %v",
			ErrPattern.Error(), e.Pattern, e.Pos, e.Err)
	}
	return fmt.Sprintf("%s: file pattern %q at entry %d (field %q): %v",
		ErrPattern.Error(), e.Pattern, e.Pos, e.Name, e.Err)
}

type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Unwrap() error {
	return ErrDuplicateField
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s: %q declared more than once", ErrDuplicateField.Error(), e.Name)
}

// StructureError reports a key whose segments do not line up with the
// declared dirs and partitions.
type StructureError struct {
	Key    string
	Reason string
}

func (e *StructureError) Unwrap() error {
	return ErrStructure
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: key %q: %s", ErrStructure.Error(), e.Key, e.Reason)
}

// NoMatchError reports a filename segment rejected by the composite
// file pattern. Pattern holds the uncompiled composite for debugging
// the description itself.
type NoMatchError struct {
	Filename string
	Pattern  string
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s: filename %q did not match %s", ErrNoMatch.Error(), e.Filename, e.Pattern)
}
