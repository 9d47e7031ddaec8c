package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/inikit/pkg/core"
)

// options holds the internal configuration of a Registry.
type options struct {
	logger      *slog.Logger
	adapter     string
	fileMode    os.FileMode
	eventBuffer int
	enclosers   core.Enclosers
	repository  func(path string) core.Repository
}

// Option defines a functional option for configuring a Registry.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:   "fs",
		fileMode:  0644,
		enclosers: core.DefaultEnclosers,
	}
}

// WithLogger sets the logger shared by the registry and every file it opens.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFileMode sets the permission bits of files created by a save.
// Existing files keep their own mode.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithEnclosers sets the characters used to pack sub-items, e.g. {K=V}.
func WithEnclosers(enc core.Enclosers) Option {
	return func(o *options) {
		o.enclosers = enc
	}
}

// WithEventBuffer sets the size of the channel returned by File.Watch.
// Zero means default (16).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. an in-memory one).
// fn is called once per opened path; the adapter name is then ignored.
func WithRepository(fn func(path string) core.Repository) Option {
	return func(o *options) {
		o.repository = fn
	}
}
