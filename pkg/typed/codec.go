package typed

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/inikit/pkg/core"
)

// ErrNotStruct is returned when the target of Decode or Encode is not a struct.
var ErrNotStruct = errors.New("typed: value is not a struct")

var errEmptyValue = errors.New("empty value")

// field describes how one struct field maps to an item.
type field struct {
	index     []int
	name      string
	required  bool
	omitEmpty bool
}

// fields lists the exported fields of t.
//
// The item name comes from the `ini` tag, then the name part of the `yaml`
// tag, then the Go field name. Item keys are case sensitive, so no case
// folding happens. The `ini` tag accepts the options required and omitempty:
//
//	MaxDificult int `ini:"MaxDificult,required"`
//	Comment     string `ini:",omitempty"`
//
// A field tagged "-" is skipped.
func fields(t reflect.Type) []field {
	var out []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		f := field{index: sf.Index, name: sf.Name}

		tag, hasTag := sf.Tag.Lookup("ini")
		if !hasTag {
			tag, _ = sf.Tag.Lookup("yaml")
		}
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			f.name = name
		}
		for _, opt := range strings.Split(opts, ",") {
			switch opt {
			case "required":
				f.required = true
			case "omitempty":
				f.omitEmpty = true
			}
		}
		out = append(out, f)
	}
	return out
}

// Decode fills a T from the items of section.
//
// String fields receive the raw value. Integers and booleans are parsed
// with strconv, the same way core.Document.Int and Bool do, so "1.5" is not
// an int and "yes" is not a bool. Other kinds use YAML scalar rules. Missing
// items leave the field at its zero value unless the field is required.
//
// A conversion failure is a *core.ValueError; a missing required item is a
// *core.ItemError wrapping core.ErrItemNotFound.
func Decode[T any](doc *core.Document, section string) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() != reflect.Struct {
		return out, fmt.Errorf("%w: %T", ErrNotStruct, out)
	}
	if !doc.HasSection(section) {
		return out, fmt.Errorf("[%s]: %w", section, core.ErrSectionNotFound)
	}

	for _, f := range fields(rv.Type()) {
		value, ok := doc.Get(section, f.name)
		if !ok {
			if f.required {
				return out, &core.ItemError{Section: section, Item: f.name, Err: core.ErrItemNotFound}
			}
			continue
		}

		fv := rv.FieldByIndex(f.index)
		if err := decodeScalar(fv, value); err != nil {
			return out, &core.ValueError{
				Section: section,
				Item:    f.name,
				Value:   value,
				Type:    fv.Type().String(),
				Err:     err,
			}
		}
	}
	return out, nil
}

// decodeScalar stores raw into fv.
func decodeScalar(fv reflect.Value, raw string) error {
	if fv.Kind() == reflect.String {
		fv.SetString(raw)
		return nil
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return errEmptyValue
	}

	switch fv.Kind() {
	case reflect.Pointer:
		p := reflect.New(fv.Type().Elem())
		if err := decodeScalar(p.Elem(), raw); err != nil {
			return err
		}
		fv.Set(p)
		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		fv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
		return nil
	}

	node := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	switch tag := node.ShortTag(); {
	case tag == "!!null":
		return errEmptyValue
	case (fv.Kind() == reflect.Float32 || fv.Kind() == reflect.Float64) && tag != "!!float" && tag != "!!int":
		return fmt.Errorf("%q is not a number", value)
	}
	return node.Decode(fv.Addr().Interface())
}

// Encode writes the fields of v as items of section, in field order.
// v must be a struct or a pointer to one, and every encoded field must be a
// scalar. Nothing is written when any field fails.
func Encode(doc *core.Document, section string, v any) error {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrNotStruct, v)
	}
	if err := core.ValidateSectionName(section); err != nil {
		return err
	}

	type item struct{ key, value string }
	var items []item
	for _, f := range fields(rv.Type()) {
		fv := rv.FieldByIndex(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		value, err := scalar(fv)
		if err != nil {
			return &core.ItemError{Section: section, Item: f.name, Err: err}
		}
		if err := core.ValidateItem(f.name, value); err != nil {
			return &core.ItemError{Section: section, Item: f.name, Err: err}
		}
		items = append(items, item{f.name, value})
	}

	if err := doc.AddSection(section); err != nil {
		return err
	}
	for _, it := range items {
		if err := doc.Set(section, it.key, it.value); err != nil {
			return err
		}
	}
	return nil
}

// scalar renders a field value the way YAML would write it, unquoted.
func scalar(fv reflect.Value) (string, error) {
	if fv.Kind() == reflect.String {
		return fv.String(), nil
	}
	var node yaml.Node
	if err := node.Encode(fv.Interface()); err != nil {
		return "", err
	}
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%s is not a scalar", fv.Type())
	}
	if node.Tag == "!!null" {
		return "", nil
	}
	return node.Value, nil
}
