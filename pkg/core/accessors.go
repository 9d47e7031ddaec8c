package core

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns a required value.
// Unlike Get, a missing section or item is reported as an error.
func (d *Document) String(section, item string) (string, error) {
	if !d.HasSection(section) {
		return "", fmt.Errorf("[%s]: %w", section, ErrSectionNotFound)
	}
	v, ok := d.Get(section, item)
	if !ok {
		return "", &ItemError{Section: section, Item: item, Err: ErrItemNotFound}
	}
	return v, nil
}

// Int returns a required value parsed as a base-10 integer.
func (d *Document) Int(section, item string) (int, error) {
	v, err := d.String(section, item)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &ValueError{Section: section, Item: item, Value: v, Type: "int", Err: err}
	}
	return n, nil
}

// Bool returns a required value parsed with strconv.ParseBool.
func (d *Document) Bool(section, item string) (bool, error) {
	v, err := d.String(section, item)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, &ValueError{Section: section, Item: item, Value: v, Type: "bool", Err: err}
	}
	return b, nil
}
