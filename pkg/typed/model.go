package typed

import (
	"fmt"

	"github.com/aretw0/inikit/pkg/core"
)

// SectionModel is a typed view of one section.
type SectionModel[T any] struct {
	Name  string
	Data  T
	Saver Saver[T] // Active Record reference interface
}

// Saver interface avoids tight coupling between models and the Repository.
type Saver[T any] interface {
	Save(m *SectionModel[T], persist bool) error
}

// Save writes the model back through the attached saver.
func (m *SectionModel[T]) Save(persist bool) error {
	if m.Saver == nil {
		return fmt.Errorf("section %q is detached (missing Saver)", m.Name)
	}
	return m.Saver.Save(m, persist)
}

// Repository maps the sections of an open file to values of T.
type Repository[T any] struct {
	file *core.File
}

// NewRepository creates a typed view over f.
func NewRepository[T any](f *core.File) *Repository[T] {
	return &Repository[T]{file: f}
}

// Get decodes one section.
func (r *Repository[T]) Get(section string) (*SectionModel[T], error) {
	data, err := Decode[T](r.file.Document(), section)
	if err != nil {
		return nil, err
	}
	return &SectionModel[T]{Name: section, Data: data, Saver: r}, nil
}

// List decodes every section accepted by match, in file order.
// A nil match accepts all sections. The first failure stops the listing.
func (r *Repository[T]) List(match func(section string) bool) ([]*SectionModel[T], error) {
	var out []*SectionModel[T]
	for _, name := range r.file.Sections() {
		if match != nil && !match(name) {
			continue
		}
		m, err := r.Get(name)
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Save encodes m into its section. With persist the file is saved as well.
func (r *Repository[T]) Save(m *SectionModel[T], persist bool) error {
	if m.Saver == nil {
		m.Saver = r
	}
	if err := Encode(r.file.Document(), m.Name, m.Data); err != nil {
		return err
	}
	if !persist {
		return nil
	}
	return r.file.Save()
}
