package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrSectionNotFound = errors.New("section not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidValue    = errors.New("invalid value")
)

// ItemError ties an error to one item of a section.
type ItemError struct {
	Section string
	Item    string
	Err     error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Section, e.Item, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// ValueError reports a stored value that could not be converted to the requested type.
type ValueError struct {
	Section string
	Item    string
	Value   string
	Type    string
	Err     error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("[%s] %s: cannot parse %q as %s: %v", e.Section, e.Item, e.Value, e.Type, e.Err)
}

// Unwrap exposes both ErrInvalidValue and the underlying parse error.
func (e *ValueError) Unwrap() []error {
	return []error{ErrInvalidValue, e.Err}
}
