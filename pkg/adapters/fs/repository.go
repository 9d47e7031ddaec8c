package fs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/inikit/pkg/core"
)

// Repository implements core.Repository for a single file on disk.
// It retains the raw layout of the last load or save so that a save only
// touches the lines whose data changed.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	layout        *Layout
	watcherActive bool
	lastLoad      *time.Time
	lastSave      *time.Time
}

// Config holds the configuration for the file repository.
type Config struct {
	Path        string
	Logger      *slog.Logger
	FileMode    os.FileMode // mode of newly created files, 0644 if zero
	EventBuffer int         // watch channel buffer, 16 if zero
}

// NewRepository creates a repository for config.Path with an empty layout.
// Nothing is read until Load.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.FileMode == 0 {
		config.FileMode = 0644
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 16
	}
	path := filepath.Clean(config.Path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Repository{
		Path:   path,
		config: config,
		layout: NewLayout(),
	}
}

// Load reads and decodes the file.
// A missing file yields an empty document and an empty layout.
func (r *Repository) Load() (*core.Document, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", r.Path, err)
		}
		r.config.Logger.Debug("file does not exist, starting empty", "path", r.Path)
		data = nil
	}

	layout := ParseLayout(data)
	doc := Decode(layout)

	now := time.Now()
	r.mu.Lock()
	r.layout = layout
	r.lastLoad = &now
	r.mu.Unlock()

	return doc, nil
}

// Save reconciles doc with the retained layout and writes the result.
//
// Workflow:
//  1. Rebuild the lines from the previous layout and doc (see Reconcile).
//  2. If nothing is left to write, leave the file untouched.
//  3. Write atomically, keeping the file mode of an existing file.
//  4. Retain the new lines as the layout for the next save.
func (r *Repository) Save(doc *core.Document) error {
	r.mu.RLock()
	prev := r.layout
	r.mu.RUnlock()

	next := Reconcile(prev, doc)
	if next.Len() == 0 {
		r.config.Logger.Debug("nothing to write", "path", r.Path)
		return nil
	}

	if err := replaceFile(r.Path, next.Bytes(), r.config.FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.Path, err)
	}
	r.config.Logger.Info("file written", "path", r.Path, "lines", next.Len())

	now := time.Now()
	r.mu.Lock()
	r.layout = next
	r.lastSave = &now
	r.mu.Unlock()

	return nil
}

// Layout returns a copy of the retained layout.
func (r *Repository) Layout() *Layout {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Layout{
		Lines:   append([]string(nil), r.layout.Lines...),
		Newline: r.layout.Newline,
		BOM:     r.layout.BOM,
	}
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
