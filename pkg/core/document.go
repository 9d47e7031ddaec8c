package core

import (
	"fmt"
	"strings"
	"unicode"
)

// Section is a named, ordered set of items.
type Section struct {
	Name  string
	Items *Values
}

// Document is the central entity of the domain.
// It holds sections and their items in insertion order. It is not safe for
// concurrent use.
type Document struct {
	order    []string
	sections map[string]*Section
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{sections: make(map[string]*Section)}
}

// ValidateSectionName checks that name can be written as a section header.
func ValidateSectionName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty section name", ErrInvalidName)
	}
	if strings.ContainsRune(name, ']') || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: section %q contains ']' or whitespace", ErrInvalidName, name)
	}
	return nil
}

// ValidateItemKey checks that key can be written as the left side of an item line.
func ValidateItemKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty item key", ErrInvalidName)
	case strings.Contains(key, "="):
		return fmt.Errorf("%w: item %q contains '='", ErrInvalidName, key)
	case strings.Contains(key, "\n"):
		return fmt.Errorf("%w: item %q contains a line break", ErrInvalidName, key)
	case looksLikeHeader(key):
		return fmt.Errorf("%w: item %q looks like a section header", ErrInvalidName, key)
	}
	// ";x=1" would be read back as a comment.
	if t := strings.TrimLeft(key, " \t"); strings.HasPrefix(t, ";") || strings.HasPrefix(t, "#") {
		return fmt.Errorf("%w: item %q starts like a comment", ErrInvalidName, key)
	}
	return nil
}

// ValidateItem checks key and value together. Besides each part on its own,
// the rendered key=value line must not read back as a section header, as
// "[x" and "]" would.
func ValidateItem(key, value string) error {
	if err := ValidateItemKey(key); err != nil {
		return err
	}
	if err := ValidateValue(value); err != nil {
		return err
	}
	if looksLikeHeader(key + "=" + value) {
		return fmt.Errorf("%w: item %q with value %q reads as a section header", ErrInvalidName, key, value)
	}
	return nil
}

// looksLikeHeader mirrors the header rule of the line grammar: the first
// space-delimited token starts with '[' and has a ']' after it.
func looksLikeHeader(line string) bool {
	first, _, _ := strings.Cut(line, " ")
	return strings.HasPrefix(first, "[") && strings.Contains(first[1:], "]")
}

// ValidateValue checks that value fits on a single line.
func ValidateValue(value string) error {
	if strings.Contains(value, "\n") {
		return fmt.Errorf("%w: value contains a line break", ErrInvalidValue)
	}
	return nil
}

// Get returns the value of item in section. Absence is not an error.
func (d *Document) Get(section, item string) (string, bool) {
	s, ok := d.sections[section]
	if !ok {
		return "", false
	}
	return s.Items.Get(item)
}

// Deref reads pointerItem and then reads the item it names in the same section.
// It replaces chained lookups through a "last read" value with two explicit reads.
func (d *Document) Deref(section, pointerItem string) (string, bool) {
	target, ok := d.Get(section, pointerItem)
	if !ok {
		return "", false
	}
	return d.Get(section, target)
}

// Set creates section if needed and upserts item.
func (d *Document) Set(section, item, value string) error {
	if err := ValidateSectionName(section); err != nil {
		return err
	}
	if err := ValidateItem(item, value); err != nil {
		return err
	}
	d.section(section).Items.Set(item, value)
	return nil
}

// AddSection registers an empty section. It is a no-op if the section exists.
func (d *Document) AddSection(name string) error {
	if err := ValidateSectionName(name); err != nil {
		return err
	}
	d.section(name)
	return nil
}

func (d *Document) section(name string) *Section {
	if d.sections == nil {
		d.sections = make(map[string]*Section)
	}
	s, ok := d.sections[name]
	if !ok {
		s = &Section{Name: name, Items: NewValues()}
		d.sections[name] = s
		d.order = append(d.order, name)
	}
	return s
}

// Section returns the named section.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// DeleteItem removes a single item. It reports false when there was nothing to remove.
func (d *Document) DeleteItem(section, item string) bool {
	s, ok := d.sections[section]
	if !ok {
		return false
	}
	return s.Items.Delete(item)
}

// DeleteSection removes a section and all of its items.
func (d *Document) DeleteSection(name string) bool {
	if _, ok := d.sections[name]; !ok {
		return false
	}
	delete(d.sections, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// HasSection reports whether the section exists.
func (d *Document) HasSection(name string) bool {
	_, ok := d.sections[name]
	return ok
}

// HasItem reports whether item exists in section.
func (d *Document) HasItem(section, item string) bool {
	_, ok := d.Get(section, item)
	return ok
}

// Sections returns the section names in insertion order.
func (d *Document) Sections() []string {
	names := make([]string, 0, len(d.order))
	for _, n := range d.order {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Items returns the item keys of section in insertion order.
// An absent section yields an empty slice.
func (d *Document) Items(section string) []string {
	s, ok := d.sections[section]
	if !ok {
		return []string{}
	}
	return s.Items.Keys()
}

// SectionPosition returns the 1-based position of the section, or 0.
func (d *Document) SectionPosition(name string) int {
	if !d.HasSection(name) {
		return 0
	}
	for i, n := range d.order {
		if n == name {
			return i + 1
		}
	}
	return 0
}

// SectionAt returns the section name at the 1-based position pos.
func (d *Document) SectionAt(pos int) (string, bool) {
	if pos < 1 || pos > len(d.order) {
		return "", false
	}
	return d.order[pos-1], true
}

// ItemPosition returns the 1-based position of item within section, or 0.
func (d *Document) ItemPosition(section, item string) int {
	s, ok := d.sections[section]
	if !ok {
		return 0
	}
	return s.Items.Position(item)
}

// ItemAt returns the item key at the 1-based position pos within section.
func (d *Document) ItemAt(section string, pos int) (string, bool) {
	s, ok := d.sections[section]
	if !ok {
		return "", false
	}
	return s.Items.At(pos)
}

// ClearSection removes every item of section but keeps the section itself.
func (d *Document) ClearSection(name string) bool {
	s, ok := d.sections[name]
	if !ok {
		return false
	}
	s.Items.Clear()
	return true
}

// Clear removes every section.
func (d *Document) Clear() {
	d.order = nil
	d.sections = make(map[string]*Section)
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.order)
}

// SectionLen returns the number of items in section, or -1 if it does not exist.
func (d *Document) SectionLen(name string) int {
	s, ok := d.sections[name]
	if !ok {
		return -1
	}
	return s.Items.Len()
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := NewDocument()
	for _, name := range d.order {
		s := d.sections[name]
		c.order = append(c.order, name)
		c.sections[name] = &Section{Name: name, Items: s.Items.Clone()}
	}
	return c
}
