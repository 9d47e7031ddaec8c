package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path" yaml:"path"`
	Lines         int        `json:"lines" yaml:"lines"`
	Newline       string     `json:"newline" yaml:"newline"`
	WatcherActive bool       `json:"watcher_active" yaml:"watcher_active"`
	LastLoad      *time.Time `json:"last_load,omitempty" yaml:"last_load,omitempty"`
	LastSave      *time.Time `json:"last_save,omitempty" yaml:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	newline := "LF"
	if r.layout.newline() == "\r\n" {
		newline = "CRLF"
	}
	return RepositoryState{
		Path:          r.Path,
		Lines:         r.layout.Len(),
		Newline:       newline,
		WatcherActive: r.watcherActive,
		LastLoad:      r.lastLoad,
		LastSave:      r.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

// WatcherActive reports whether a Watch loop is running.
func (r *Repository) WatcherActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.watcherActive
}
