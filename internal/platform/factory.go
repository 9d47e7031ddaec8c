package platform

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/inikit/pkg/core"
)

// NewRegistry creates an empty registry of open files.
//
//	reg := platform.NewRegistry(platform.WithLogger(logger))
//	f, err := reg.Open("Quiz.ini", false)
func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.enclosers.Open == 0 || o.enclosers.Close == 0 {
		o.enclosers = core.DefaultEnclosers
	}
	return &Registry{
		opts:  o,
		files: make(map[string]*core.File),
	}
}

// key normalizes path so that different spellings of one file share an entry.
func key(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	return abs, nil
}

// newFile wires a File to a fresh repository. Nothing is read yet.
func (r *Registry) newFile(path string) (*core.File, error) {
	repo, err := newRepository(path, r.opts)
	if err != nil {
		return nil, err
	}
	return core.NewFile(path, repo, core.FileConfig{
		Logger:    r.opts.logger,
		Enclosers: r.opts.enclosers,
		OnClose:   r.forget,
	}), nil
}
