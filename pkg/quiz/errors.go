package quiz

import (
	"errors"
	"fmt"

	"github.com/aretw0/inikit/pkg/core"
)

// ErrConfigNotFound is returned by Load when the quiz file does not exist.
var ErrConfigNotFound = errors.New("quiz config file not found")

// ValidationError names the section, and the item when there is one, that
// prevents a quiz from starting.
type ValidationError struct {
	Section string
	Item    string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Item == "" {
		return fmt.Sprintf("[%s]: %s", e.Section, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Section, e.Item, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// invalid converts a document access error into a ValidationError.
func invalid(section string, err error) error {
	var ve *core.ValueError
	if errors.As(err, &ve) {
		return &ValidationError{
			Section: ve.Section,
			Item:    ve.Item,
			Message: fmt.Sprintf("%q is not a valid %s", ve.Value, ve.Type),
			Err:     err,
		}
	}
	var ie *core.ItemError
	if errors.As(err, &ie) {
		return &ValidationError{Section: ie.Section, Item: ie.Item, Message: "is missing", Err: err}
	}
	if errors.Is(err, core.ErrSectionNotFound) {
		return &ValidationError{Section: section, Message: "section is missing", Err: err}
	}
	return &ValidationError{Section: section, Message: err.Error(), Err: err}
}
