package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// FileConfig holds the collaborators of a File.
type FileConfig struct {
	Logger    *slog.Logger
	Enclosers Enclosers
	// OnClose is called once by Close, e.g. to deregister the file.
	OnClose func(*File)
}

// File is an open configuration file: an in-memory Document plus the
// Repository it is loaded from and saved to.
// Mutations stay in memory until Save, or until a call made with persist=true.
type File struct {
	path   string
	repo   Repository
	doc    *Document
	config FileConfig
}

// NewFile creates a File over repo with an empty Document.
// Call Reload to populate it from the repository.
func NewFile(path string, repo Repository, config FileConfig) *File {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	config.Enclosers = config.Enclosers.orDefault()
	return &File{
		path:   path,
		repo:   repo,
		doc:    NewDocument(),
		config: config,
	}
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Document exposes the in-memory document. Changes made through it are
// written by the next Save like any other.
func (f *File) Document() *Document {
	return f.doc
}

// Reload replaces the in-memory document with the repository content.
// Unsaved changes are discarded.
func (f *File) Reload() error {
	doc, err := f.repo.Load()
	if err != nil {
		return err
	}
	f.doc = doc
	f.config.Logger.Debug("file loaded", "path", f.path, "sections", doc.Len())
	return nil
}

// Save synchronizes the in-memory document to the repository.
func (f *File) Save() error {
	if err := f.repo.Save(f.doc); err != nil {
		return err
	}
	f.config.Logger.Debug("file saved", "path", f.path)
	return nil
}

func (f *File) persist(persist bool) error {
	if !persist {
		return nil
	}
	return f.Save()
}

// Read returns the value of item in section. Absence is not an error.
func (f *File) Read(section, item string) (string, bool) {
	return f.doc.Get(section, item)
}

// Deref resolves an answer-pointer style item: it reads pointerItem and then the item it names.
func (f *File) Deref(section, pointerItem string) (string, bool) {
	return f.doc.Deref(section, pointerItem)
}

// Write upserts item in section, creating the section if needed.
func (f *File) Write(section, item, value string, persist bool) error {
	if err := f.doc.Set(section, item, value); err != nil {
		return err
	}
	return f.persist(persist)
}

// Remove deletes a single item. It reports false, and does not save, when the item is absent.
func (f *File) Remove(section, item string, persist bool) (bool, error) {
	if !f.doc.DeleteItem(section, item) {
		return false, nil
	}
	return true, f.persist(persist)
}

// RemoveSection deletes a section with all its items.
func (f *File) RemoveSection(section string, persist bool) (bool, error) {
	if !f.doc.DeleteSection(section) {
		return false, nil
	}
	return true, f.persist(persist)
}

// ClearSection removes every item of section, keeping the section.
func (f *File) ClearSection(section string, persist bool) (bool, error) {
	if !f.doc.ClearSection(section) {
		return false, nil
	}
	return true, f.persist(persist)
}

// ClearAll removes every section.
func (f *File) ClearAll(persist bool) error {
	f.doc.Clear()
	return f.persist(persist)
}

// HasSection reports whether the section exists.
func (f *File) HasSection(section string) bool {
	return f.doc.HasSection(section)
}

// HasItem reports whether item exists in section.
func (f *File) HasItem(section, item string) bool {
	return f.doc.HasItem(section, item)
}

// Sections returns the section names in insertion order.
func (f *File) Sections() []string {
	return f.doc.Sections()
}

// Items returns the item keys of section in insertion order.
func (f *File) Items(section string) []string {
	return f.doc.Items(section)
}

// SectionPosition returns the 1-based position of section, or 0 if absent.
func (f *File) SectionPosition(section string) int {
	return f.doc.SectionPosition(section)
}

// ItemPosition returns the 1-based position of item within section, or 0 if absent.
func (f *File) ItemPosition(section, item string) int {
	return f.doc.ItemPosition(section, item)
}

// SectionAt returns the section at the 1-based position pos, if any.
func (f *File) SectionAt(pos int) (string, bool) {
	return f.doc.SectionAt(pos)
}

// ItemAt returns the item key at the 1-based position pos within section, if any.
func (f *File) ItemAt(section string, pos int) (string, bool) {
	return f.doc.ItemAt(section, pos)
}

// Int returns a required integer value.
func (f *File) Int(section, item string) (int, error) {
	return f.doc.Int(section, item)
}

// Bool returns a required boolean value.
func (f *File) Bool(section, item string) (bool, error) {
	return f.doc.Bool(section, item)
}

// SubItems unpacks the inline {K=V} pairs stored in item.
// An absent item yields an empty map.
func (f *File) SubItems(section, item string) *Values {
	v, _ := f.doc.Get(section, item)
	return UnpackSubItems(v, f.config.Enclosers)
}

// WriteSubItems packs values into item.
func (f *File) WriteSubItems(section, item string, values *Values, persist bool) error {
	return f.Write(section, item, PackSubItems(values, f.config.Enclosers), persist)
}

// Watch observes changes of the backing file if the repository supports it.
func (f *File) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := f.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

// Close releases the file. In-memory changes that were not saved are lost.
func (f *File) Close() {
	if f.config.OnClose != nil {
		onClose := f.config.OnClose
		f.config.OnClose = nil
		onClose(f)
	}
}
