package inikit

import (
	"log/slog"
	"os"

	"github.com/aretw0/inikit/internal/platform"
	"github.com/aretw0/inikit/pkg/core"
)

// --- Types ---

// Registry holds the open files of an application, keyed by path.
type Registry = platform.Registry

// File is an open configuration file.
type File = core.File

// Document is the in-memory content of a file: ordered sections of ordered items.
type Document = core.Document

// Values is an ordered string map, used for sub-items.
type Values = core.Values

// Enclosers are the characters around a packed sub-item.
type Enclosers = core.Enclosers

// Event is a change of a watched file.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring a Registry.
type Option = platform.Option

// WithLogger sets the logger for the registry and its files.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFileMode sets the permission bits of files created by a save.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// WithEnclosers sets the characters used to pack sub-items.
func WithEnclosers(enc Enclosers) Option {
	return platform.WithEnclosers(enc)
}

// WithEventBuffer sets the size of the channel returned by File.Watch.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithAdapter selects the storage adapter by name. Only "fs" is built in.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(fn func(path string) core.Repository) Option {
	return platform.WithRepository(fn)
}

// --- Factory ---

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	return platform.NewRegistry(opts...)
}

// --- Sub-items ---

// DefaultEnclosers packs sub-items as {KEY=VALUE}.
var DefaultEnclosers = core.DefaultEnclosers

// NewValues creates an empty ordered map.
func NewValues() *Values {
	return core.NewValues()
}

// PackSubItems encodes values as a single inline string, e.g. {K1=V1}{K2=V2}.
func PackSubItems(values *Values, enc Enclosers) string {
	return core.PackSubItems(values, enc)
}

// UnpackSubItems decodes a string produced by PackSubItems.
func UnpackSubItems(s string, enc Enclosers) *Values {
	return core.UnpackSubItems(s, enc)
}

// --- Utils ---

// FindFile looks for name in startDir and its parents.
func FindFile(startDir, name string) (string, error) {
	return platform.FindFile(startDir, name)
}
