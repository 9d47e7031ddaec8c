package platform

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/inikit/pkg/core"
)

// Registry holds the open files of an application, keyed by absolute path.
// Opening a path that is already registered hands back the same *core.File.
// The registry itself is safe for concurrent use; the files it returns are not.
type Registry struct {
	opts *options

	mu    sync.RWMutex
	files map[string]*core.File
}

// Open returns the file at path, parsed from disk. A missing file opens empty.
//
// If path is already registered and forceNew is false, the registered file
// is reloaded from disk (unsaved changes are discarded) and returned.
// Otherwise a fresh file replaces any previous entry.
func (r *Registry) Open(path string, forceNew bool) (*core.File, error) {
	k, err := key(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	// Lookup and registration happen under one lock: one *core.File per path.
	r.mu.Lock()
	defer r.mu.Unlock()

	if !forceNew {
		if f, ok := r.files[k]; ok {
			if err := f.Reload(); err != nil {
				return nil, err
			}
			r.opts.logger.Debug("file reused", "path", k)
			return f, nil
		}
	}

	f, err := r.newFile(k)
	if err != nil {
		return nil, err
	}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	r.files[k] = f
	r.opts.logger.Debug("file opened", "path", k, "sections", len(f.Sections()))
	return f, nil
}

// Create registers an empty file at path without reading it. Whatever is on
// disk is replaced by the in-memory content on the first save that has
// something to write.
func (r *Registry) Create(path string) (*core.File, error) {
	k, err := key(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	f, err := r.newFile(k)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.files[k] = f
	r.mu.Unlock()
	r.opts.logger.Debug("file created", "path", k)
	return f, nil
}

// OpenGlob opens every file matching pattern, in lexical order.
// Patterns support ** for any number of directories.
func (r *Registry) OpenGlob(pattern string) ([]*core.File, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	files := make([]*core.File, 0, len(matches))
	for _, m := range matches {
		f, err := r.Open(m, false)
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Get returns the registered file for path without touching the disk.
func (r *Registry) Get(path string) (*core.File, bool) {
	k, err := key(path)
	if err != nil {
		return nil, false
	}
	return r.lookup(k)
}

// Files returns the registered files ordered by path.
func (r *Registry) Files() []*core.File {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files := make([]*core.File, 0, len(r.files))
	for _, f := range r.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path() < files[j].Path()
	})
	return files
}

// Close deregisters path. Unsaved changes of the file are lost.
func (r *Registry) Close(path string) bool {
	f, ok := r.Get(path)
	if !ok {
		return false
	}
	f.Close()
	return true
}

// CloseAll deregisters every file.
func (r *Registry) CloseAll() {
	for _, f := range r.Files() {
		f.Close()
	}
}

func (r *Registry) lookup(k string) (*core.File, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.files[k]
	return f, ok
}

// forget is the OnClose hook of every file. A replaced file must not remove
// its successor.
func (r *Registry) forget(f *core.File) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.files[f.Path()]; ok && cur == f {
		delete(r.files, f.Path())
		r.opts.logger.Debug("file closed", "path", f.Path())
	}
}

// RegistryState exposes internal state for observability.
type RegistryState struct {
	Adapter   string `json:"adapter" yaml:"adapter"`
	Enclosers string `json:"enclosers" yaml:"enclosers"`
	Files     []any  `json:"files" yaml:"files"`
}

// State implements introspection.Introspectable.
func (r *Registry) State() any {
	files := r.Files()
	state := RegistryState{
		Adapter:   r.opts.adapter,
		Enclosers: string([]rune{r.opts.enclosers.Open, r.opts.enclosers.Close}),
		Files:     make([]any, 0, len(files)),
	}
	if r.opts.repository != nil {
		state.Adapter = "custom"
	}
	for _, f := range files {
		state.Files = append(state.Files, f.State())
	}
	return state
}

// ComponentType implements introspection.Component.
func (r *Registry) ComponentType() string {
	return "registry"
}

var _ introspection.Introspectable = (*Registry)(nil)
var _ introspection.Component = (*Registry)(nil)
