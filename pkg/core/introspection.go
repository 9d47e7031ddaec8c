package core

import (
	"github.com/aretw0/introspection"
)

// FileState exposes internal state for observability.
type FileState struct {
	Path           string `json:"path" yaml:"path"`
	Sections       int    `json:"sections" yaml:"sections"`
	Items          int    `json:"items" yaml:"items"`
	RepositoryType string `json:"repository_type" yaml:"repository_type"`
	Repository     any    `json:"repository,omitempty" yaml:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (f *File) State() any {
	items := 0
	for _, name := range f.doc.Sections() {
		items += f.doc.SectionLen(name)
	}

	state := FileState{
		Path:           f.path,
		Sections:       f.doc.Len(),
		Items:          items,
		RepositoryType: "unknown",
	}
	if comp, ok := f.repo.(introspection.Component); ok {
		state.RepositoryType = comp.ComponentType()
	}
	if in, ok := f.repo.(introspection.Introspectable); ok {
		state.Repository = in.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (f *File) ComponentType() string {
	return "file"
}

var _ introspection.Introspectable = (*File)(nil)
var _ introspection.Component = (*File)(nil)
